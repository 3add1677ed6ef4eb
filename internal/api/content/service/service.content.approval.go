// Package contentsvc - service cho domain content.
package contentsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "ecojourney/internal/api/base/service"
	models "ecojourney/internal/api/content/models"
	"ecojourney/internal/common"
	"ecojourney/internal/global"
)

// ApprovalService quản lý lịch sử xét duyệt nội dung (chỉ thêm mới)
type ApprovalService struct {
	basesvc.BaseServiceMongo[models.ApprovalRecord]
}

// NewApprovalService tạo mới ApprovalService
func NewApprovalService() (*ApprovalService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ContentApprovals)
	if !exist {
		return nil, fmt.Errorf("failed to get content_approvals collection: %v", common.ErrNotFound)
	}
	return &ApprovalService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[models.ApprovalRecord](collection),
	}, nil
}

// Record ghi một bản ghi xét duyệt mới cho nội dung
func (s *ApprovalService) Record(ctx context.Context, contentID, approverID primitive.ObjectID, status, comments string) (models.ApprovalRecord, error) {
	return s.InsertOne(ctx, models.ApprovalRecord{
		ContentID:  contentID,
		Status:     status,
		ApproverID: approverID,
		Comments:   comments,
	})
}

// HistoryByContent trả về lịch sử xét duyệt của một nội dung, mới nhất trước
func (s *ApprovalService) HistoryByContent(ctx context.Context, contentID primitive.ObjectID) ([]models.ApprovalRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, bson.M{"contentId": contentID}, opts)
}
