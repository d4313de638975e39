package requestsRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"miohost/models"
)

// CreateServiceRequest inserts a new service booking and returns its ID.
func (r *mongoRequestRepo) CreateServiceRequest(ctx context.Context, req models.ServiceRequest) (string, error) {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now().UTC()
	}

	_, err := r.requests.InsertOne(ctx, req)
	if err != nil {
		return "", err
	}
	return req.ID, nil
}

// GetServiceRequestByID returns a service booking by its ID.
func (r *mongoRequestRepo) GetServiceRequestByID(ctx context.Context, id string) (*models.ServiceRequest, error) {
	var req models.ServiceRequest
	err := r.requests.FindOne(ctx, bson.M{"id": id}).Decode(&req)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ListServiceRequests fetches the most recent service bookings.
func (r *mongoRequestRepo) ListServiceRequests(ctx context.Context, limit int64) ([]models.ServiceRequest, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(limit)
	cursor, err := r.requests.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reqs []models.ServiceRequest
	if err := cursor.All(ctx, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

// CreateReceptionMessage inserts a new reception message and returns its ID.
func (r *mongoRequestRepo) CreateReceptionMessage(ctx context.Context, msg models.ReceptionMessage) (string, error) {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	_, err := r.messages.InsertOne(ctx, msg)
	if err != nil {
		return "", err
	}
	return msg.ID, nil
}

// ListReceptionMessages fetches the most recent reception messages.
func (r *mongoRequestRepo) ListReceptionMessages(ctx context.Context, limit int64) ([]models.ReceptionMessage, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(limit)
	cursor, err := r.messages.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var msgs []models.ReceptionMessage
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}
