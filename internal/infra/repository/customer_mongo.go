package repository

import (
	"context"

	"gasvision/internal/domain/model"
	"gasvision/internal/infra/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CustomerMongoRepository struct {
	db MongoAcquirer
}

func NewCustomerMongoRepository(db MongoAcquirer) *CustomerMongoRepository {
	return &CustomerMongoRepository{db: db}
}

func (r *CustomerMongoRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	d, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, unavailable(err)
	}
	return d.Collection(db.CustomersCollection), nil
}

// phoneで探して無ければ作る。あればname/updated_atを上書き。
func (r *CustomerMongoRepository) Upsert(ctx context.Context, customer model.Customer) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}

	_, err = coll.UpdateOne(ctx,
		bson.M{"phone": customer.Phone},
		bson.M{"$set": bson.M{
			"name":       customer.Name,
			"updated_at": customer.UpdatedAt,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return unavailable(err)
	}
	return nil
}

func (r *CustomerMongoRepository) FindAll(ctx context.Context) ([]model.Customer, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return []model.Customer{}, err
	}

	cur, err := coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "phone", Value: 1}}))
	if err != nil {
		return []model.Customer{}, unavailable(err)
	}
	defer func() { _ = cur.Close(ctx) }()

	items := make([]model.Customer, 0)
	for cur.Next(ctx) {
		var c model.Customer
		if err := cur.Decode(&c); err != nil {
			return []model.Customer{}, malformed(cur.Current.Lookup("_id").String(), err)
		}
		items = append(items, c)
	}
	if err := cur.Err(); err != nil {
		return []model.Customer{}, unavailable(err)
	}
	return items, nil
}
