package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jmoiron/sqlx"
	"github.com/jobmatchai/backend/internal/ai/coverletter"
	"github.com/jobmatchai/backend/jobsearch/cv/cvapi"
	"github.com/jobmatchai/backend/jobsearch/cv/cvinfra"
	"github.com/jobmatchai/backend/jobsearch/cv/cvsrv"
	"github.com/jobmatchai/backend/jobsearch/posting"
	"github.com/jobmatchai/backend/jobsearch/posting/postingapi"
	"github.com/jobmatchai/backend/jobsearch/posting/postinginfra"
	"github.com/jobmatchai/backend/jobsearch/posting/postingsrv"
	"github.com/jobmatchai/backend/jobsearch/tracker/trackerapi"
	"github.com/jobmatchai/backend/jobsearch/tracker/trackerinfra"
	"github.com/jobmatchai/backend/jobsearch/tracker/trackersrv"
	"github.com/jobmatchai/backend/pkg/fsx"
	"github.com/jobmatchai/backend/pkg/fsx/fsxlocal"
	"github.com/jobmatchai/backend/pkg/fsx/fsxs3"
	"github.com/jobmatchai/backend/pkg/logx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	S3Client   *s3.Client

	// Domain Services
	CVService      *cvsrv.Service
	SearchService  *postingsrv.Service
	TrackerService *trackersrv.Service
	LetterService  *coverletter.Generator

	// API Handlers
	CVHandlers      *cvapi.CVHandlers
	JobHandlers     *postingapi.JobHandlers
	TrackerHandlers *trackerapi.TrackerHandlers
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection (job search cache)
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis, search caching disabled: %v", err)
	}

	// 3. CV storage: S3 when a bucket is configured, local disk otherwise
	awsBucket := os.Getenv("AWS_BUCKET")
	if awsBucket != "" {
		awsRegion := os.Getenv("AWS_REGION")
		cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(awsRegion))
		if err != nil {
			logx.Fatalf("unable to load SDK config, %v", err)
		}
		c.S3Client = s3.NewFromConfig(cfg)
		c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, awsBucket, "uploads")
	} else {
		root := os.Getenv("STORAGE_ROOT")
		if root == "" {
			root = "./data"
		}
		fs, err := fsxlocal.NewLocalFileSystem(root)
		if err != nil {
			logx.Fatalf("Failed to initialize local storage at %s: %v", root, err)
		}
		c.FileSystem = fs
		logx.Infof("AWS_BUCKET not set, storing CV uploads under %s", root)
	}
}

func (c *Container) initServices() {
	// --- Repositories ---
	uploadRepo := cvinfra.NewPostgresUploadRepository(c.DB)
	applicationRepo := trackerinfra.NewPostgresRepository(c.DB)

	// --- Job Board Sources ---
	// Sources with missing credentials log a warning and return nothing,
	// so the aggregator works with whatever keys are configured.
	sources := []posting.Source{
		postinginfra.NewAdzunaSource(os.Getenv("ADZUNA_APP_ID"), os.Getenv("ADZUNA_API_KEY")),
		postinginfra.NewReedSource(os.Getenv("REED_API_KEY")),
		postinginfra.NewJSearchSource(os.Getenv("RAPIDAPI_KEY")),
	}
	searchCache := postinginfra.NewRedisCache(c.Redis, postinginfra.DefaultCacheTTL)

	// --- Domain Services ---
	c.CVService = cvsrv.NewService(uploadRepo, c.FileSystem)
	c.SearchService = postingsrv.NewService(sources, searchCache)
	c.TrackerService = trackersrv.NewService(applicationRepo)
	c.LetterService = coverletter.NewGenerator(os.Getenv("OPENAI_API_KEY"))

	// --- Handlers ---
	c.CVHandlers = cvapi.NewCVHandlers(c.CVService)
	c.JobHandlers = postingapi.NewJobHandlers(c.SearchService, c.CVService, c.LetterService)
	c.TrackerHandlers = trackerapi.NewTrackerHandlers(c.TrackerService)
}
