package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApprovalStatus định nghĩa kết quả của một lần xét duyệt
const (
	ApprovalStatusPending          = "pending"
	ApprovalStatusApproved         = "approved"
	ApprovalStatusRejected         = "rejected"
	ApprovalStatusRequestedChanges = "requested_changes"
)

// ApprovalRecord là bản ghi audit cho một quyết định duyệt/từ chối.
// Chỉ thêm mới, không bao giờ sửa; mỗi quyết định tạo đúng một bản ghi.
type ApprovalRecord struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ContentID  primitive.ObjectID `json:"contentId" bson:"contentId" index:"single:1"`
	Status     string             `json:"status" bson:"status" index:"single:1"`
	ApproverID primitive.ObjectID `json:"approverId" bson:"approverId" index:"single:1"`
	Comments   string             `json:"comments,omitempty" bson:"comments,omitempty"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
