package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/klwxsrx/project-manager/internal/project/domain"
	pkgmongo "github.com/klwxsrx/project-manager/pkg/mongo"
)

const ProjectCollection = "projects"

type ProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(coll *mongo.Collection) *ProjectRepository {
	return &ProjectRepository{coll: coll}
}

func (r *ProjectRepository) EnsureIndexes(ctx context.Context) error {
	return pkgmongo.EnsureIndexes(ctx, r.coll,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("name_unique").SetUnique(true),
		},
		mongo.IndexModel{
			Keys:    bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().SetName("created_at"),
		},
	)
}

func (r *ProjectRepository) NextID() domain.ProjectID {
	return domain.ProjectID{UUID: uuid.New()}
}

func (r *ProjectRepository) Insert(ctx context.Context, project *domain.Project) error {
	_, err := r.coll.InsertOne(ctx, fromDomain(project))
	if pkgmongo.IsDuplicateKeyError(err) {
		return domain.ErrProjectNameAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}

	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	result, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: project.ID.String()}}, fromDomain(project))
	if pkgmongo.IsDuplicateKeyError(err) {
		return domain.ErrProjectNameAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("replace project: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrProjectNotFound
	}

	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id domain.ProjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrProjectNotFound
	}

	return nil
}

func (r *ProjectRepository) FindOne(ctx context.Context, spec domain.FindProjectSpecification) (*domain.Project, error) {
	filter := bson.D{}
	if spec.ID != nil {
		filter = append(filter, bson.E{Key: "_id", Value: spec.ID.String()})
	}
	if spec.Name != nil {
		filter = append(filter, bson.E{Key: "name", Value: *spec.Name})
	}

	var doc projectDocument
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if pkgmongo.IsNotFound(err) {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find project: %w", err)
	}

	project, err := doc.toDomain()
	if err != nil {
		return nil, err
	}

	return &project, nil
}

func (r *ProjectRepository) List(ctx context.Context, offset, limit int) ([]domain.Project, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find projects: %w", err)
	}

	var docs []projectDocument
	err = cursor.All(ctx, &docs)
	if err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}

	result := make([]domain.Project, 0, len(docs))
	for _, doc := range docs {
		project, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, project)
	}

	return result, nil
}

func (r *ProjectRepository) Count(ctx context.Context) (int, error) {
	count, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}

	return int(count), nil
}

type projectDocument struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	CreatedBy   string    `bson:"created_by"`
	CreatedAt   time.Time `bson:"created_at"`
}

func fromDomain(project *domain.Project) projectDocument {
	return projectDocument{
		ID:          project.ID.String(),
		Name:        project.Name,
		Description: project.Description,
		CreatedBy:   project.CreatedBy,
		CreatedAt:   project.CreatedAt,
	}
}

func (d projectDocument) toDomain() (domain.Project, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Project{}, fmt.Errorf("parse project id %q: %w", d.ID, err)
	}

	return domain.Project{
		ID:          domain.ProjectID{UUID: id},
		Name:        d.Name,
		Description: d.Description,
		CreatedBy:   d.CreatedBy,
		CreatedAt:   d.CreatedAt,
	}, nil
}
