package repository

import (
	"context"
	"fmt"

	"gasvision/internal/domain/model"
	"gasvision/internal/infra/db"
	repo "gasvision/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// 初回に接続するハンドル（db.Handle[*mongo.Database]）
type MongoAcquirer interface {
	Acquire(ctx context.Context) (*mongo.Database, error)
}

type OrderMongoRepository struct {
	db MongoAcquirer
}

func NewOrderMongoRepository(db MongoAcquirer) *OrderMongoRepository {
	return &OrderMongoRepository{db: db}
}

func (r *OrderMongoRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	d, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, unavailable(err)
	}
	return d.Collection(db.OrdersCollection), nil
}

// _id はmongoが振る
func (r *OrderMongoRepository) Insert(ctx context.Context, order model.Order) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	if _, err := coll.InsertOne(ctx, order); err != nil {
		return unavailable(err)
	}
	return nil
}

func (r *OrderMongoRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return []model.Order{}, err
	}

	//ObjectIDの昇順＝登録順
	cur, err := coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return []model.Order{}, unavailable(err)
	}
	defer func() { _ = cur.Close(ctx) }()

	items := make([]model.Order, 0)
	for cur.Next(ctx) {
		var o model.Order
		if err := cur.Decode(&o); err != nil {
			return []model.Order{}, malformed(cur.Current.Lookup("_id").String(), err)
		}
		items = append(items, o)
	}
	if err := cur.Err(); err != nil {
		return []model.Order{}, unavailable(err)
	}
	return items, nil
}

func malformed(id string, err error) error {
	return fmt.Errorf("%w: document %s: %v", repo.ErrMalformedRecord, id, err)
}
