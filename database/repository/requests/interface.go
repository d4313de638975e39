package requestsRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"miohost/database"
	"miohost/models"
)

// RequestRepository persists submitted service bookings and reception
// messages for the front-desk console.
type RequestRepository interface {
	CreateServiceRequest(ctx context.Context, req models.ServiceRequest) (string, error)
	GetServiceRequestByID(ctx context.Context, id string) (*models.ServiceRequest, error)
	ListServiceRequests(ctx context.Context, limit int64) ([]models.ServiceRequest, error)

	CreateReceptionMessage(ctx context.Context, msg models.ReceptionMessage) (string, error)
	ListReceptionMessages(ctx context.Context, limit int64) ([]models.ReceptionMessage, error)
}

type mongoRequestRepo struct {
	requests *mongo.Collection
	messages *mongo.Collection
}

// NewMongoRequestRepo returns a new RequestRepository instance using MongoDB.
func NewMongoRequestRepo() RequestRepository {
	db := database.MongoClient.Database("miohost")
	return &mongoRequestRepo{
		requests: db.Collection("concierge_requests"),
		messages: db.Collection("reception_messages"),
	}
}
