package contentsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	authmodels "ecojourney/internal/api/auth/models"
	authsvc "ecojourney/internal/api/auth/service"
	basemodels "ecojourney/internal/api/base/models"
	basesvc "ecojourney/internal/api/base/service"
	contentdto "ecojourney/internal/api/content/dto"
	models "ecojourney/internal/api/content/models"
	notifmodels "ecojourney/internal/api/notification/models"
	notifsvc "ecojourney/internal/api/notification/service"
	"ecojourney/internal/common"
	"ecojourney/internal/delivery"
	"ecojourney/internal/global"
	"ecojourney/internal/logger"
	"ecojourney/internal/utility"
)

// ContentService quản lý vòng đời nội dung: gửi duyệt, duyệt/từ chối, xuất bản.
// Mọi quyết định duyệt tạo đúng một ApprovalRecord và một Notification cho creator;
// email đi kèm là fire-and-forget, lỗi gửi email không ảnh hưởng quyết định.
type ContentService struct {
	basesvc.BaseServiceMongo[models.ContentItem]
	approvalService     *ApprovalService
	notificationService *notifsvc.NotificationService
	userService         *authsvc.UserService
}

// ContentListQuery tham số lọc danh sách nội dung
type ContentListQuery struct {
	Status     string
	CategoryID string
	CreatorID  string
	Search     string
	Page       int64
	Limit      int64
}

// NewContentService tạo mới ContentService
func NewContentService() (*ContentService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Contents)
	if !exist {
		return nil, fmt.Errorf("failed to get contents collection: %v", common.ErrNotFound)
	}
	approvalService, err := NewApprovalService()
	if err != nil {
		return nil, err
	}
	notificationService, err := notifsvc.NewNotificationService()
	if err != nil {
		return nil, err
	}
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}
	return &ContentService{
		BaseServiceMongo:    basesvc.NewBaseServiceMongo[models.ContentItem](collection),
		approvalService:     approvalService,
		notificationService: notificationService,
		userService:         userService,
	}, nil
}

// Submit tạo nội dung mới ở trạng thái pending chờ duyệt.
// Gửi thông báo submitted và email xác nhận (best-effort) cho creator.
func (s *ContentService) Submit(ctx context.Context, creator *authmodels.User, input *contentdto.ContentCreateInput) (*models.ContentItem, error) {
	item := models.ContentItem{
		Title:        input.Title,
		Description:  input.Description,
		ContentType:  input.ContentType,
		FileURL:      input.FileURL,
		FileName:     input.FileName,
		FileType:     input.FileType,
		FileSize:     input.FileSize,
		ThumbnailURL: input.ThumbnailURL,
		Tags:         input.Tags,
		Status:       models.ContentStatusPending,
		CreatorID:    creator.ID,
	}
	if input.CategoryID != "" {
		categoryID := utility.String2ObjectID(input.CategoryID)
		item.CategoryID = &categoryID
	}

	created, err := s.InsertOne(ctx, item)
	if err != nil {
		return nil, err
	}

	// Thông báo submitted cho creator; lỗi ghi thông báo không hủy nội dung vừa tạo
	if _, err := s.notificationService.Notify(ctx, notifmodels.Notification{
		RecipientID:    creator.ID,
		RecipientEmail: creator.Email,
		ContentID:      created.ID,
		ContentTitle:   created.Title,
		Type:           notifmodels.NotificationTypeSubmitted,
		Message:        fmt.Sprintf("Nội dung \"%s\" đã được gửi và đang chờ duyệt", created.Title),
	}); err != nil {
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"content_id": created.ID.Hex(),
			"error":      err.Error(),
		}).Error("Không ghi được thông báo submitted")
	}

	delivery.GetDispatcher(global.MongoDB_ServerConfig).SendAsync(
		delivery.SubmissionEmail(creator.Email, creator.FullName(), created.Title),
	)

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"content_id": created.ID.Hex(),
		"creator_id": creator.ID.Hex(),
		"title":      created.Title,
	}).Info("Nội dung mới được gửi duyệt")

	return &created, nil
}

// FindByID trả về nội dung theo ID và tăng bộ đếm lượt xem.
// Việc tăng viewCount chạy trong goroutine riêng, lỗi chỉ được log,
// không bao giờ chặn hoặc làm hỏng kết quả đọc.
func (s *ContentService) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ContentItem, error) {
	item, err := s.FindOneById(ctx, id)
	if err != nil {
		return nil, err
	}

	go func(contentID primitive.ObjectID) {
		incCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := s.UpdateOne(incCtx, bson.M{"_id": contentID}, &basesvc.UpdateData{
			Inc: map[string]interface{}{"viewCount": 1},
		}, nil); err != nil {
			logger.GetErrorLogger().WithFields(logrus.Fields{
				"content_id": contentID.Hex(),
				"error":      err.Error(),
			}).Error("Không tăng được lượt xem")
		}
	}(item.ID)

	return &item, nil
}

// ApprovalHistory trả về lịch sử xét duyệt của một nội dung, mới nhất trước
func (s *ContentService) ApprovalHistory(ctx context.Context, contentID primitive.ObjectID) ([]models.ApprovalRecord, error) {
	if _, err := s.FindOneById(ctx, contentID); err != nil {
		return nil, err
	}
	return s.approvalService.HistoryByContent(ctx, contentID)
}

// Approve duyệt nội dung đang ở trạng thái draft hoặc pending.
// Tạo đúng một ApprovalRecord và một Notification cho creator; email best-effort.
func (s *ContentService) Approve(ctx context.Context, contentID primitive.ObjectID, approver *authmodels.User, comments string) (*models.ContentItem, error) {
	return s.decide(ctx, contentID, approver, models.ContentStatusApproved, comments)
}

// Reject từ chối nội dung đang ở trạng thái draft hoặc pending, kèm nhận xét
func (s *ContentService) Reject(ctx context.Context, contentID primitive.ObjectID, approver *authmodels.User, comments string) (*models.ContentItem, error) {
	return s.decide(ctx, contentID, approver, models.ContentStatusRejected, comments)
}

// decide thực hiện một quyết định duyệt hoặc từ chối:
// đổi trạng thái, ghi ApprovalRecord, ghi Notification, gửi email.
func (s *ContentService) decide(ctx context.Context, contentID primitive.ObjectID, approver *authmodels.User, newStatus, comments string) (*models.ContentItem, error) {
	item, err := s.FindOneById(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if !item.IsDecidable() {
		return nil, common.ErrInvalidState
	}

	updated, err := s.UpdateById(ctx, contentID, &basesvc.UpdateData{
		Set: map[string]interface{}{"status": newStatus},
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.approvalService.Record(ctx, contentID, approver.ID, newStatus, comments); err != nil {
		return nil, err
	}

	notifType := notifmodels.NotificationTypeApproved
	message := fmt.Sprintf("Nội dung \"%s\" đã được duyệt", updated.Title)
	if newStatus == models.ContentStatusRejected {
		notifType = notifmodels.NotificationTypeRejected
		message = fmt.Sprintf("Nội dung \"%s\" đã bị từ chối", updated.Title)
	}

	// Lỗi tra cứu creator không hủy quyết định, chỉ mất email đính kèm
	creator, creatorErr := s.userService.FindOneById(ctx, updated.CreatorID)

	notif := notifmodels.Notification{
		RecipientID:      updated.CreatorID,
		ContentID:        updated.ID,
		ContentTitle:     updated.Title,
		Type:             notifType,
		Message:          message,
		ApproverName:     approver.FullName(),
		ApproverComments: comments,
	}
	if creatorErr == nil {
		notif.RecipientEmail = creator.Email
	}
	if _, err := s.notificationService.Notify(ctx, notif); err != nil {
		return nil, err
	}

	if creatorErr == nil {
		dispatcher := delivery.GetDispatcher(global.MongoDB_ServerConfig)
		if newStatus == models.ContentStatusApproved {
			dispatcher.SendAsync(delivery.ApprovedEmail(creator.Email, creator.FullName(), updated.Title))
		} else {
			dispatcher.SendAsync(delivery.RejectedEmail(creator.Email, creator.FullName(), updated.Title, comments))
		}
	} else {
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"content_id": updated.ID.Hex(),
			"creator_id": updated.CreatorID.Hex(),
		}).Error("Không tra được creator để gửi email quyết định")
	}

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"content_id":  updated.ID.Hex(),
		"approver_id": approver.ID.Hex(),
		"status":      newStatus,
	}).Info("Quyết định xét duyệt nội dung")

	return &updated, nil
}

// Publish xuất bản nội dung đã được duyệt.
// Nội dung chưa ở trạng thái approved thì không đổi trạng thái và trả về lỗi nghiệp vụ,
// publishedAt chỉ được gán đúng một lần tại thời điểm xuất bản.
func (s *ContentService) Publish(ctx context.Context, contentID primitive.ObjectID, actor *authmodels.User) (*contentdto.PublishResult, error) {
	item, err := s.FindOneById(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if item.Status != models.ContentStatusApproved {
		return &contentdto.PublishResult{Published: false}, common.ErrNotApproved
	}

	publishedAt := time.Now().UnixMilli()
	if _, err := s.UpdateById(ctx, contentID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status":      models.ContentStatusPublished,
			"publishedAt": publishedAt,
		},
	}); err != nil {
		return nil, err
	}

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"content_id": contentID.Hex(),
		"actor_id":   actor.ID.Hex(),
	}).Info("Nội dung được xuất bản")

	return &contentdto.PublishResult{Published: true, PublishedAt: &publishedAt}, nil
}

// UpdateOwned sửa nội dung: chỉ creator hoặc admin, và chỉ trước trạng thái cuối
func (s *ContentService) UpdateOwned(ctx context.Context, contentID primitive.ObjectID, actor *authmodels.User, input *contentdto.ContentUpdateInput) (*models.ContentItem, error) {
	item, err := s.FindOneById(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if item.CreatorID != actor.ID && !actor.Role.CanAdminister() {
		return nil, common.ErrNotOwner
	}
	if item.IsTerminal() {
		return nil, common.ErrInvalidState
	}

	set := make(map[string]interface{})
	if input.Title != "" {
		set["title"] = input.Title
	}
	if input.Description != "" {
		set["description"] = input.Description
	}
	if input.CategoryID != "" {
		set["categoryId"] = utility.String2ObjectID(input.CategoryID)
	}
	if input.FileURL != "" {
		set["fileUrl"] = input.FileURL
	}
	if input.FileName != "" {
		set["fileName"] = input.FileName
	}
	if input.FileType != "" {
		set["fileType"] = input.FileType
	}
	if input.FileSize > 0 {
		set["fileSize"] = input.FileSize
	}
	if input.ThumbnailURL != "" {
		set["thumbnailUrl"] = input.ThumbnailURL
	}
	if input.Tags != nil {
		set["tags"] = input.Tags
	}
	if len(set) == 0 {
		return &item, nil
	}

	updated, err := s.UpdateById(ctx, contentID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteOwned xóa nội dung: creator chỉ xóa được trước trạng thái cuối, admin xóa được mọi trạng thái.
// File đã lưu ở dịch vụ ngoài không bị xóa kèm theo.
func (s *ContentService) DeleteOwned(ctx context.Context, contentID primitive.ObjectID, actor *authmodels.User) error {
	item, err := s.FindOneById(ctx, contentID)
	if err != nil {
		return err
	}
	if actor.Role.CanAdminister() {
		return s.DeleteById(ctx, contentID)
	}
	if item.CreatorID != actor.ID {
		return common.ErrNotOwner
	}
	if item.IsTerminal() {
		return common.ErrInvalidState
	}
	return s.DeleteById(ctx, contentID)
}

// List trả về danh sách nội dung theo bộ lọc trạng thái/danh mục/người tạo/từ khóa
func (s *ContentService) List(ctx context.Context, query *ContentListQuery) (*basemodels.PaginateResult[models.ContentItem], error) {
	filter := bson.M{}
	if query.Status != "" {
		filter["status"] = query.Status
	}
	if query.CategoryID != "" {
		filter["categoryId"] = utility.String2ObjectID(query.CategoryID)
	}
	if query.CreatorID != "" {
		filter["creatorId"] = utility.String2ObjectID(query.CreatorID)
	}
	if query.Search != "" {
		filter["$text"] = bson.M{"$search": query.Search}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, filter, query.Page, query.Limit, opts)
}
