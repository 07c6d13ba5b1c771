// Package main provides the API server entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	participationapp "questboard/internal/application/participation"
	questionapp "questboard/internal/application/question"
	userapp "questboard/internal/application/user"
	"questboard/internal/config"
	httphandler "questboard/internal/handler/http"
	"questboard/internal/infrastructure/auth"
	mongodbinfra "questboard/internal/infrastructure/mongodb"
	"questboard/internal/infrastructure/repository/mongodb"
)

// Container initialization timeouts.
const (
	containerInitTimeout   = 30 * time.Second
	readinessPingTimeout   = 5 * time.Second
	mongoDisconnectTimeout = 10 * time.Second
)

// Container holds all application dependencies and manages their lifecycle.
type Container struct {
	// Configuration
	Config *config.Config
	Logger *slog.Logger

	// Infrastructure
	MongoDB      *mongo.Client
	MongoDBName  string
	Redis        *redis.Client
	Sessions     *auth.SessionStore
	TokenManager *auth.TokenManager

	// Repositories
	QuestionRepo      *mongodb.MongoQuestionRepository
	ParticipationRepo *mongodb.MongoParticipationRepository
	UserRepo          *mongodb.MongoUserRepository

	// Question use cases
	ListQuestionsUC  *questionapp.ListQuestionsUseCase
	ShowQuestionUC   *questionapp.ShowQuestionUseCase
	CreateQuestionUC *questionapp.CreateQuestionUseCase
	UpdateQuestionUC *questionapp.UpdateQuestionUseCase
	DeleteQuestionUC *questionapp.DeleteQuestionUseCase

	// Participation use cases
	RegisterParticipationUC *participationapp.RegisterParticipationUseCase

	// User use cases
	RegisterUserUC     *userapp.RegisterUserUseCase
	AuthenticateUserUC *userapp.AuthenticateUserUseCase
	GetUserUC          *userapp.GetUserUseCase
	ListUsersUC        *userapp.ListUsersUseCase
	UpdateUserUC       *userapp.UpdateUserUseCase
	DeleteUserUC       *userapp.DeleteUserUseCase

	// HTTP handlers
	QuestionHandler *httphandler.QuestionHandler
	UserHandler     *httphandler.UserHandler
	AuthHandler     *httphandler.AuthHandler
}

// ContainerOption configures the Container.
type ContainerOption func(*Container)

// WithLogger sets a custom logger for the container.
func WithLogger(logger *slog.Logger) ContainerOption {
	return func(c *Container) {
		c.Logger = logger
	}
}

// NewContainer creates a new dependency injection container.
func NewContainer(cfg *config.Config, opts ...ContainerOption) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.setupInfrastructure(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to setup infrastructure: %w", err)
	}

	c.setupRepositories()
	c.setupUseCases()
	c.setupHTTPHandlers()

	return c, nil
}

// setupInfrastructure connects MongoDB and Redis and builds the auth
// components.
func (c *Container) setupInfrastructure() error {
	ctx, cancel := context.WithTimeout(context.Background(), containerInitTimeout)
	defer cancel()

	mongoOpts := options.Client().
		ApplyURI(c.Config.MongoDB.URI).
		SetMaxPoolSize(c.Config.MongoDB.MaxPoolSize).
		SetTimeout(c.Config.MongoDB.Timeout)

	mongoClient, err := mongo.Connect(mongoOpts)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	c.MongoDB = mongoClient
	c.MongoDBName = c.Config.MongoDB.Database

	if pingErr := mongoClient.Ping(ctx, nil); pingErr != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", pingErr)
	}

	if indexErr := mongodbinfra.CreateAllIndexes(ctx, mongoClient.Database(c.MongoDBName)); indexErr != nil {
		return fmt.Errorf("failed to create MongoDB indexes: %w", indexErr)
	}

	c.Redis = redis.NewClient(&redis.Options{
		Addr:     c.Config.Redis.Addr,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
		PoolSize: c.Config.Redis.PoolSize,
	})
	if pingErr := c.Redis.Ping(ctx).Err(); pingErr != nil {
		return fmt.Errorf("failed to ping Redis: %w", pingErr)
	}

	c.Sessions = auth.NewSessionStore(auth.SessionStoreConfig{Client: c.Redis})

	tokenManager, err := auth.NewTokenManager(
		c.Config.Auth.JWTSecret,
		c.Config.App.Name,
		c.Config.Auth.TokenTTL,
	)
	if err != nil {
		return fmt.Errorf("failed to create token manager: %w", err)
	}
	c.TokenManager = tokenManager

	return nil
}

func (c *Container) setupRepositories() {
	db := c.MongoDB.Database(c.MongoDBName)

	c.QuestionRepo = mongodb.NewMongoQuestionRepository(
		db.Collection(mongodbinfra.CollectionQuestions),
		mongodb.WithQuestionRepoLogger(c.Logger),
	)
	c.ParticipationRepo = mongodb.NewMongoParticipationRepository(
		db.Collection(mongodbinfra.CollectionParticipations),
		mongodb.WithParticipationRepoLogger(c.Logger),
	)
	c.UserRepo = mongodb.NewMongoUserRepository(
		db.Collection(mongodbinfra.CollectionUsers),
		mongodb.WithUserRepoLogger(c.Logger),
	)
}

func (c *Container) setupUseCases() {
	counters := questionapp.NewCounterMaintainer(c.QuestionRepo)

	c.ListQuestionsUC = questionapp.NewListQuestionsUseCase(c.QuestionRepo, c.UserRepo)
	c.ShowQuestionUC = questionapp.NewShowQuestionUseCase(
		c.QuestionRepo, c.ParticipationRepo, c.UserRepo, counters, c.Logger)
	c.CreateQuestionUC = questionapp.NewCreateQuestionUseCase(c.QuestionRepo)
	c.UpdateQuestionUC = questionapp.NewUpdateQuestionUseCase(c.QuestionRepo)
	c.DeleteQuestionUC = questionapp.NewDeleteQuestionUseCase(c.QuestionRepo)

	c.RegisterParticipationUC = participationapp.NewRegisterParticipationUseCase(
		c.ParticipationRepo, c.QuestionRepo, counters)

	c.RegisterUserUC = userapp.NewRegisterUserUseCase(c.UserRepo)
	c.AuthenticateUserUC = userapp.NewAuthenticateUserUseCase(c.UserRepo)
	c.GetUserUC = userapp.NewGetUserUseCase(c.UserRepo)
	c.ListUsersUC = userapp.NewListUsersUseCase(c.UserRepo)
	c.UpdateUserUC = userapp.NewUpdateUserUseCase(c.UserRepo)
	c.DeleteUserUC = userapp.NewDeleteUserUseCase(c.UserRepo)
}

func (c *Container) setupHTTPHandlers() {
	c.QuestionHandler = httphandler.NewQuestionHandler(
		c.ListQuestionsUC,
		c.ShowQuestionUC,
		c.CreateQuestionUC,
		c.UpdateQuestionUC,
		c.DeleteQuestionUC,
		c.RegisterParticipationUC,
	)
	c.UserHandler = httphandler.NewUserHandler(
		c.RegisterUserUC,
		c.GetUserUC,
		c.ListUsersUC,
		c.UpdateUserUC,
		c.DeleteUserUC,
	)
	c.AuthHandler = httphandler.NewAuthHandler(
		c.AuthenticateUserUC,
		c.TokenManager,
		c.Sessions,
	)
}

// Ready reports whether the backing stores are reachable. Used by the
// readiness probe.
func (c *Container) Ready(ctx context.Context) bool {
	if c.MongoDB == nil || c.Redis == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, readinessPingTimeout)
	defer cancel()

	if err := c.MongoDB.Ping(ctx, nil); err != nil {
		c.Logger.WarnContext(ctx, "readiness: MongoDB unreachable", slog.String("error", err.Error()))
		return false
	}
	if err := c.Redis.Ping(ctx).Err(); err != nil {
		c.Logger.WarnContext(ctx, "readiness: Redis unreachable", slog.String("error", err.Error()))
		return false
	}
	return true
}

// Close releases container resources.
func (c *Container) Close() error {
	var errs []error

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis client: %w", err))
		}
	}

	if c.MongoDB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), mongoDisconnectTimeout)
		defer cancel()
		if err := c.MongoDB.Disconnect(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to disconnect MongoDB: %w", err))
		}
	}

	return errors.Join(errs...)
}
