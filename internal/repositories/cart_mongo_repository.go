package repositories

import (
	"context"
	"errors"
	"fmt"

	"kickshop/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCartRepository is a MongoDB implementation of CartRepository.
// The cart_line unique index over (user_id, product_id, size) keeps lines unique.
type MongoCartRepository struct {
	coll *mongo.Collection
}

// NewMongoCartRepository creates a new instance of MongoCartRepository.
func NewMongoCartRepository(db *mongo.Database) *MongoCartRepository {
	return &MongoCartRepository{coll: db.Collection(cartItemsCollection)}
}

func lineFilter(item *models.CartItem) bson.M {
	return bson.M{"user_id": item.UserID, "product_id": item.ProductID, "size": item.Size}
}

// increment grows the matching line and copies its id into item.
func (r *MongoCartRepository) increment(ctx context.Context, item *models.CartItem) (bool, error) {
	opts := options.FindOneAndUpdate().SetProjection(bson.M{"id": 1})
	var existing models.CartItem
	err := r.coll.FindOneAndUpdate(ctx, lineFilter(item), bson.M{"$inc": bson.M{"quantity": item.Quantity}}, opts).Decode(&existing)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	item.ID = existing.ID
	return true, nil
}

// AddOrIncrement applies $inc atomically and inserts when no line matched.
func (r *MongoCartRepository) AddOrIncrement(ctx context.Context, item *models.CartItem) (bool, error) {
	merged, err := r.increment(ctx, item)
	if err != nil {
		return false, fmt.Errorf("failed to update cart item: %w", err)
	}
	if merged {
		return true, nil
	}

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	_, err = r.coll.InsertOne(ctx, item)
	if err == nil {
		return false, nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return false, fmt.Errorf("failed to create cart item: %w", err)
	}

	// Lost the insert race; the line exists now.
	merged, err = r.increment(ctx, item)
	if err != nil {
		return false, fmt.Errorf("failed to update cart item: %w", err)
	}
	if !merged {
		return false, fmt.Errorf("failed to add cart item: %w", ErrNotFound)
	}
	return true, nil
}

// ListByUser returns the lines owned by userID.
func (r *MongoCartRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.CartItem, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	items := []models.CartItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart items: %w", err)
	}
	return items, nil
}

// DeleteForUser deletes the line matching both id and owner.
func (r *MongoCartRepository) DeleteForUser(ctx context.Context, userID, itemID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": itemID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("cart item %s: %w", itemID, ErrNotFound)
	}
	return nil
}

// DeleteLines deletes the listed lines of userID.
func (r *MongoCartRepository) DeleteLines(ctx context.Context, userID string, itemIDs []string) error {
	if len(itemIDs) == 0 {
		return nil
	}
	filter := bson.M{"user_id": userID, "id": bson.M{"$in": itemIDs}}
	if _, err := r.coll.DeleteMany(ctx, filter); err != nil {
		return fmt.Errorf("failed to delete cart items: %w", err)
	}
	return nil
}
