package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/klwxsrx/project-manager/internal/user/domain"
	pkgmongo "github.com/klwxsrx/project-manager/pkg/mongo"
)

const UserCollection = "users"

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(coll *mongo.Collection) *UserRepository {
	return &UserRepository{coll: coll}
}

// EnsureIndexes creates the unique username index that guards concurrent registrations.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	return pkgmongo.EnsureIndexes(ctx, r.coll, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetName("username_unique").SetUnique(true),
	})
}

func (r *UserRepository) NextID() domain.UserID {
	return domain.UserID{UUID: uuid.New()}
}

func (r *UserRepository) Insert(ctx context.Context, user *domain.User) error {
	_, err := r.coll.InsertOne(ctx, fromDomain(user))
	if pkgmongo.IsDuplicateKeyError(err) {
		return domain.ErrUsernameAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) FindOne(ctx context.Context, spec domain.FindUserSpecification) (*domain.User, error) {
	filter := bson.D{}
	if spec.ID != nil {
		filter = append(filter, bson.E{Key: "_id", Value: spec.ID.String()})
	}
	if spec.Username != nil {
		filter = append(filter, bson.E{Key: "username", Value: *spec.Username})
	}

	var doc userDocument
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if pkgmongo.IsNotFound(err) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	return doc.toDomain()
}

type userDocument struct {
	ID           string    `bson:"_id"`
	Username     string    `bson:"username"`
	PasswordHash string    `bson:"password_hash"`
	Role         string    `bson:"role"`
	CreatedAt    time.Time `bson:"created_at"`
}

func fromDomain(user *domain.User) userDocument {
	return userDocument{
		ID:           user.ID.String(),
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		CreatedAt:    user.CreatedAt,
	}
}

func (d userDocument) toDomain() (*domain.User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("parse user id %q: %w", d.ID, err)
	}

	return &domain.User{
		ID:           domain.UserID{UUID: id},
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		Role:         domain.Role(d.Role),
		CreatedAt:    d.CreatedAt,
	}, nil
}
