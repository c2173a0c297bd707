package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/freelancehub/job-board/internal/core/domain"
)

const jobsCollection = "jobs"

type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(jobsCollection)}
}

type mongoBudget struct {
	Min float64 `bson:"min"`
	Max float64 `bson:"max"`
}

type mongoJob struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Category    string             `bson:"category"`
	Budget      mongoBudget        `bson:"budget"`
	ClientID    primitive.ObjectID `bson:"client,omitempty"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"createdAt"`

	// Client is populated only by the List aggregation ($lookup on users).
	Client []domain.ClientRef `bson:"client_doc,omitempty"`
}

func (mj mongoJob) toDomain() *domain.Job {
	job := &domain.Job{
		ID:          mj.ID.Hex(),
		Title:       mj.Title,
		Description: mj.Description,
		Category:    domain.Category(mj.Category),
		Budget:      domain.Budget{Min: mj.Budget.Min, Max: mj.Budget.Max},
		Status:      mj.Status,
		CreatedAt:   mj.CreatedAt.UTC(),
	}
	if !mj.ClientID.IsZero() {
		job.ClientID = mj.ClientID.Hex()
	}
	if len(mj.Client) > 0 {
		ref := mj.Client[0]
		job.Client = &ref
	}
	return job
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoJob{
		Title:       job.Title,
		Description: job.Description,
		Category:    string(job.Category),
		Budget:      mongoBudget{Min: job.Budget.Min, Max: job.Budget.Max},
		Status:      job.Status,
		CreatedAt:   job.CreatedAt,
	}

	// The client reference is advisory: stored when it parses as an
	// ObjectID, never checked against the users collection.
	if oid, err := primitive.ObjectIDFromHex(job.ClientID); err == nil {
		doc.ClientID = oid
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}

	created := *job
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// List returns every job in storage order with the client reference expanded
// to {name, email} via a $lookup against the users collection.
func (r *JobRepository) List(ctx context.Context) ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: usersCollection},
			{Key: "localField", Value: "client"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "client_doc"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "client_doc.name", Value: 1},
			{Key: "client_doc.email", Value: 1},
			{Key: "title", Value: 1},
			{Key: "description", Value: 1},
			{Key: "category", Value: 1},
			{Key: "budget", Value: 1},
			{Key: "client", Value: 1},
			{Key: "status", Value: 1},
			{Key: "createdAt", Value: 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer cursor.Close(ctx)

	jobs := make([]*domain.Job, 0)
	for cursor.Next(ctx) {
		var mj mongoJob
		if err := cursor.Decode(&mj); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, mj.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}
