package contentsvc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ecojourney/config"
	authmodels "ecojourney/internal/api/auth/models"
	authsvc "ecojourney/internal/api/auth/service"
	basemock "ecojourney/internal/api/base/mock"
	basesvc "ecojourney/internal/api/base/service"
	contentdto "ecojourney/internal/api/content/dto"
	models "ecojourney/internal/api/content/models"
	notifmodels "ecojourney/internal/api/notification/models"
	notifsvc "ecojourney/internal/api/notification/service"
	"ecojourney/internal/common"
	"ecojourney/internal/global"
)

// workflowFixture gom các fake cho một vòng đời nội dung trong bộ nhớ:
// một content item, bộ đếm ApprovalRecord/Notification và creator cố định.
type workflowFixture struct {
	item          *models.ContentItem
	creator       *authmodels.User
	updateCalls   int
	records       []models.ApprovalRecord
	notifications []notifmodels.Notification
	svc           *ContentService
}

func newWorkflowFixture(t *testing.T, status string) *workflowFixture {
	t.Helper()
	global.MongoDB_ServerConfig = &config.Configuration{
		JwtSecret:      "test-secret-cho-unit-test",
		JwtExpireHours: 168,
	}

	f := &workflowFixture{
		creator: &authmodels.User{
			ID:        primitive.NewObjectID(),
			Username:  "alice",
			Email:     "alice@example.com",
			FirstName: "Alice",
			LastName:  "Nguyễn",
			Role:      common.RoleContentProducer,
			IsActive:  true,
		},
	}
	f.item = &models.ContentItem{
		ID:        primitive.NewObjectID(),
		Title:     "Hành trình xanh",
		Status:    status,
		CreatorID: f.creator.ID,
	}

	contentStore := &basemock.BaseService[models.ContentItem]{
		FindOneByIdFn: func(ctx context.Context, id primitive.ObjectID) (models.ContentItem, error) {
			return *f.item, nil
		},
		UpdateByIdFn: func(ctx context.Context, id primitive.ObjectID, data interface{}) (models.ContentItem, error) {
			f.updateCalls++
			if upd, ok := data.(*basesvc.UpdateData); ok {
				if s, ok := upd.Set["status"].(string); ok {
					f.item.Status = s
				}
				if p, ok := upd.Set["publishedAt"].(int64); ok {
					f.item.PublishedAt = &p
				}
			}
			return *f.item, nil
		},
	}
	approvalStore := &basemock.BaseService[models.ApprovalRecord]{
		InsertOneFn: func(ctx context.Context, data models.ApprovalRecord) (models.ApprovalRecord, error) {
			f.records = append(f.records, data)
			return data, nil
		},
	}
	notifStore := &basemock.BaseService[notifmodels.Notification]{
		InsertOneFn: func(ctx context.Context, data notifmodels.Notification) (notifmodels.Notification, error) {
			f.notifications = append(f.notifications, data)
			return data, nil
		},
	}
	userStore := &basemock.BaseService[authmodels.User]{
		FindOneByIdFn: func(ctx context.Context, id primitive.ObjectID) (authmodels.User, error) {
			return *f.creator, nil
		},
	}

	f.svc = &ContentService{
		BaseServiceMongo:    contentStore,
		approvalService:     &ApprovalService{BaseServiceMongo: approvalStore},
		notificationService: &notifsvc.NotificationService{BaseServiceMongo: notifStore},
		userService:         &authsvc.UserService{BaseServiceMongo: userStore},
	}
	return f
}

func approver() *authmodels.User {
	return &authmodels.User{
		ID:        primitive.NewObjectID(),
		FirstName: "Minh",
		LastName:  "Trần",
		Role:      common.RoleContentManager,
	}
}

func TestApproveWritesOneRecordAndOneNotification(t *testing.T) {
	f := newWorkflowFixture(t, models.ContentStatusPending)

	// SMTP không cấu hình: email chắc chắn không gửi được,
	// quyết định vẫn phải giữ nguyên với đúng một record và một notification
	updated, err := f.svc.Approve(context.Background(), f.item.ID, approver(), "Nội dung tốt")
	require.NoError(t, err)

	assert.Equal(t, models.ContentStatusApproved, updated.Status)
	require.Len(t, f.records, 1)
	assert.Equal(t, models.ContentStatusApproved, f.records[0].Status)
	assert.Equal(t, "Nội dung tốt", f.records[0].Comments)

	require.Len(t, f.notifications, 1)
	assert.Equal(t, notifmodels.NotificationTypeApproved, f.notifications[0].Type)
	assert.Equal(t, f.creator.ID, f.notifications[0].RecipientID)
	assert.Equal(t, f.creator.Email, f.notifications[0].RecipientEmail)
}

func TestRejectCarriesComments(t *testing.T) {
	f := newWorkflowFixture(t, models.ContentStatusPending)

	updated, err := f.svc.Reject(context.Background(), f.item.ID, approver(), "Thiếu nguồn trích dẫn")
	require.NoError(t, err)

	assert.Equal(t, models.ContentStatusRejected, updated.Status)
	require.Len(t, f.records, 1)
	assert.Equal(t, "Thiếu nguồn trích dẫn", f.records[0].Comments)
	require.Len(t, f.notifications, 1)
	assert.Equal(t, notifmodels.NotificationTypeRejected, f.notifications[0].Type)
	assert.Equal(t, "Thiếu nguồn trích dẫn", f.notifications[0].ApproverComments)
}

func TestDecideRequiresDecidableStatus(t *testing.T) {
	for _, status := range []string{
		models.ContentStatusApproved,
		models.ContentStatusRejected,
		models.ContentStatusPublished,
		models.ContentStatusArchived,
	} {
		t.Run(status, func(t *testing.T) {
			f := newWorkflowFixture(t, status)

			_, err := f.svc.Approve(context.Background(), f.item.ID, approver(), "")
			assert.ErrorIs(t, err, common.ErrInvalidState)
			assert.Zero(t, f.updateCalls)
			assert.Empty(t, f.records)
			assert.Empty(t, f.notifications)
		})
	}
}

func TestPublishOnlyApprovedContent(t *testing.T) {
	t.Run("pending không xuất bản được", func(t *testing.T) {
		f := newWorkflowFixture(t, models.ContentStatusPending)

		result, err := f.svc.Publish(context.Background(), f.item.ID, approver())
		assert.ErrorIs(t, err, common.ErrNotApproved)
		assert.False(t, result.Published)
		assert.Zero(t, f.updateCalls)
		assert.Equal(t, models.ContentStatusPending, f.item.Status)
	})

	t.Run("approved xuất bản được đúng một lần", func(t *testing.T) {
		f := newWorkflowFixture(t, models.ContentStatusApproved)

		before := time.Now().UnixMilli()
		result, err := f.svc.Publish(context.Background(), f.item.ID, approver())
		require.NoError(t, err)
		assert.True(t, result.Published)
		require.NotNil(t, result.PublishedAt)
		assert.GreaterOrEqual(t, *result.PublishedAt, before)
		assert.Equal(t, models.ContentStatusPublished, f.item.Status)

		// Xuất bản lần hai bị từ chối, publishedAt giữ nguyên
		firstPublishedAt := *f.item.PublishedAt
		_, err = f.svc.Publish(context.Background(), f.item.ID, approver())
		assert.ErrorIs(t, err, common.ErrNotApproved)
		assert.Equal(t, firstPublishedAt, *f.item.PublishedAt)
	})
}

func TestSubmitStartsPendingAndNotifiesCreator(t *testing.T) {
	f := newWorkflowFixture(t, models.ContentStatusDraft)

	created, err := f.svc.Submit(context.Background(), f.creator, &contentdto.ContentCreateInput{
		Title:       "Hướng dẫn phân loại rác tại nguồn",
		ContentType: "article",
	})
	require.NoError(t, err)

	assert.Equal(t, models.ContentStatusPending, created.Status)
	assert.Equal(t, f.creator.ID, created.CreatorID)
	require.Len(t, f.notifications, 1)
	assert.Equal(t, notifmodels.NotificationTypeSubmitted, f.notifications[0].Type)
}
