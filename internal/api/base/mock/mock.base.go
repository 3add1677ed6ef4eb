// Package basemock cung cấp bản cài đặt BaseServiceMongo trong bộ nhớ cho test.
// Mỗi phương thức có thể gán hook riêng; hook không gán thì hành xử như
// một collection rỗng (find trả về not found, insert trả lại dữ liệu).
package basemock

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "ecojourney/internal/api/base/models"
	"ecojourney/internal/common"
)

// BaseService là test double cho basesvc.BaseServiceMongo[Model]
type BaseService[Model any] struct {
	InsertOneFn          func(ctx context.Context, data Model) (Model, error)
	InsertManyFn         func(ctx context.Context, data []Model) ([]Model, error)
	FindOneFn            func(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (Model, error)
	FindFn               func(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]Model, error)
	UpdateOneFn          func(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (Model, error)
	UpdateManyFn         func(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (int64, error)
	DeleteOneFn          func(ctx context.Context, filter interface{}) error
	DeleteManyFn         func(ctx context.Context, filter interface{}) (int64, error)
	FindOneAndUpdateFn   func(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (Model, error)
	CountDocumentsFn     func(ctx context.Context, filter interface{}) (int64, error)
	FindOneByIdFn        func(ctx context.Context, id primitive.ObjectID) (Model, error)
	FindManyByIdsFn      func(ctx context.Context, ids []primitive.ObjectID) ([]Model, error)
	FindWithPaginationFn func(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[Model], error)
	UpdateByIdFn         func(ctx context.Context, id primitive.ObjectID, data interface{}) (Model, error)
	DeleteByIdFn         func(ctx context.Context, id primitive.ObjectID) error
	UpsertFn             func(ctx context.Context, filter interface{}, data interface{}) (Model, error)
	DocumentExistsFn     func(ctx context.Context, filter interface{}) (bool, error)
}

func (s *BaseService[Model]) InsertOne(ctx context.Context, data Model) (Model, error) {
	if s.InsertOneFn != nil {
		return s.InsertOneFn(ctx, data)
	}
	return data, nil
}

func (s *BaseService[Model]) InsertMany(ctx context.Context, data []Model) ([]Model, error) {
	if s.InsertManyFn != nil {
		return s.InsertManyFn(ctx, data)
	}
	return data, nil
}

func (s *BaseService[Model]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (Model, error) {
	if s.FindOneFn != nil {
		return s.FindOneFn(ctx, filter, opts)
	}
	var zero Model
	return zero, common.ErrNotFound
}

func (s *BaseService[Model]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]Model, error) {
	if s.FindFn != nil {
		return s.FindFn(ctx, filter, opts)
	}
	return []Model{}, nil
}

func (s *BaseService[Model]) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (Model, error) {
	if s.UpdateOneFn != nil {
		return s.UpdateOneFn(ctx, filter, update, opts)
	}
	var zero Model
	return zero, common.ErrNotFound
}

func (s *BaseService[Model]) UpdateMany(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (int64, error) {
	if s.UpdateManyFn != nil {
		return s.UpdateManyFn(ctx, filter, update, opts)
	}
	return 0, nil
}

func (s *BaseService[Model]) DeleteOne(ctx context.Context, filter interface{}) error {
	if s.DeleteOneFn != nil {
		return s.DeleteOneFn(ctx, filter)
	}
	return nil
}

func (s *BaseService[Model]) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	if s.DeleteManyFn != nil {
		return s.DeleteManyFn(ctx, filter)
	}
	return 0, nil
}

func (s *BaseService[Model]) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (Model, error) {
	if s.FindOneAndUpdateFn != nil {
		return s.FindOneAndUpdateFn(ctx, filter, update, opts)
	}
	var zero Model
	return zero, common.ErrNotFound
}

func (s *BaseService[Model]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	if s.CountDocumentsFn != nil {
		return s.CountDocumentsFn(ctx, filter)
	}
	return 0, nil
}

func (s *BaseService[Model]) FindOneById(ctx context.Context, id primitive.ObjectID) (Model, error) {
	if s.FindOneByIdFn != nil {
		return s.FindOneByIdFn(ctx, id)
	}
	var zero Model
	return zero, common.ErrNotFound
}

func (s *BaseService[Model]) FindManyByIds(ctx context.Context, ids []primitive.ObjectID) ([]Model, error) {
	if s.FindManyByIdsFn != nil {
		return s.FindManyByIdsFn(ctx, ids)
	}
	return []Model{}, nil
}

func (s *BaseService[Model]) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[Model], error) {
	if s.FindWithPaginationFn != nil {
		return s.FindWithPaginationFn(ctx, filter, page, limit, opts)
	}
	return &basemodels.PaginateResult[Model]{Page: page, Limit: limit, Items: []Model{}}, nil
}

func (s *BaseService[Model]) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (Model, error) {
	if s.UpdateByIdFn != nil {
		return s.UpdateByIdFn(ctx, id, data)
	}
	var zero Model
	return zero, common.ErrNotFound
}

func (s *BaseService[Model]) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	if s.DeleteByIdFn != nil {
		return s.DeleteByIdFn(ctx, id)
	}
	return nil
}

func (s *BaseService[Model]) Upsert(ctx context.Context, filter interface{}, data interface{}) (Model, error) {
	if s.UpsertFn != nil {
		return s.UpsertFn(ctx, filter, data)
	}
	var zero Model
	return zero, common.ErrNotFound
}

func (s *BaseService[Model]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	if s.DocumentExistsFn != nil {
		return s.DocumentExistsFn(ctx, filter)
	}
	return false, nil
}
