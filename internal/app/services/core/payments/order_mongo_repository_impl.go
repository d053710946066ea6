package payments

import (
	"context"
	"log"
	"medilink-service/internal/app/contracts"
	"medilink-service/internal/app/models"
	"medilink-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const orderCollectionName = "payment_orders"

type orderMongoRepository struct {
	orders *mongo.Collection
}

func NewOrderMongoRepository(client *mongo.Client, dbName string) contracts.OrderRepository {
	orders := client.Database(dbName).Collection(orderCollectionName)

	// One document per order id. The pending-only CompleteOrder filter is
	// atomic per document, so exactly-once per order id holds only if the id
	// cannot map to two documents.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "order_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Fatalf("Failed to create unique order_id index: %s", err.Error())
	}

	return &orderMongoRepository{orders: orders}
}

func (r *orderMongoRepository) CreateOrder(ctx context.Context, order *models.PaymentOrder) (*models.PaymentOrder, error) {
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	_, err := r.orders.InsertOne(ctx, order)
	if mongo.IsDuplicateKeyError(err) {
		return nil, exceptions.ErrOrderAlreadyExists(err, order.OrderID)
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return order, nil
}

func (r *orderMongoRepository) FindByOrderID(ctx context.Context, orderID string) (*models.PaymentOrder, error) {
	order := new(models.PaymentOrder)
	err := r.orders.FindOne(ctx, bson.M{"order_id": orderID}).Decode(order)
	if err == mongo.ErrNoDocuments {
		return nil, exceptions.ErrOrderNotFound(err, orderID)
	}
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return order, nil
}

// CompleteOrder is the single compare-and-swap that moves an order out of
// pending. The filter matches only pending documents, so concurrent signals
// for the same order cannot both win: the loser sees ErrNoDocuments and gets
// the already-terminal order back. Status and gateway result fields land in
// one update, never partially.
func (r *orderMongoRepository) CompleteOrder(ctx context.Context, orderID string, status models.PaymentOrderStatus, result models.GatewayResult) (*models.PaymentOrder, bool, error) {
	filter := bson.M{
		"order_id": orderID,
		"status":   models.OrderPending,
	}
	update := bson.M{
		"$set": bson.M{
			"status":          status,
			"result_code":     result.ResultCode,
			"trans_id":        result.TransID,
			"gateway_message": result.Message,
			"pay_type":        result.PayType,
			"response_time":   result.ResponseTime,
			"updated_at":      time.Now().UTC(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	order := new(models.PaymentOrder)
	err := r.orders.FindOneAndUpdate(ctx, filter, update, opts).Decode(order)
	if err == nil {
		return order, true, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, false, exceptions.ErrMongoDBUpdateDocument(err)
	}

	existing, findErr := r.FindByOrderID(ctx, orderID)
	if findErr != nil {
		return nil, false, findErr
	}
	return existing, false, nil
}
