package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/naufalhakm/forum-api/internal/repository"
	mysqlRepo "github.com/naufalhakm/forum-api/internal/repository/mysql"
	redisRepo "github.com/naufalhakm/forum-api/internal/repository/redis"
	"github.com/naufalhakm/forum-api/internal/rest"
	"github.com/naufalhakm/forum-api/internal/rest/middleware"
	"github.com/naufalhakm/forum-api/internal/usecase/comment"
	"github.com/naufalhakm/forum-api/internal/usecase/reply"
	"github.com/naufalhakm/forum-api/internal/usecase/thread"
	"github.com/naufalhakm/forum-api/internal/usecase/user"
	"github.com/naufalhakm/forum-api/internal/workers"
)

const (
	defaultTimeout      = 30
	defaultAddress      = ":9090"
	defaultCacheDB      = 0
	defaultBloomBitSize = 10000000
	defaultJWTTTLHours  = 24
	dbMaxRetry          = 10
	dbRetryIntervalSec  = 2
)

func init() {
	if err := godotenv.Load(); err != nil {
		logrus.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "Asia/Jakarta")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	// TranslateError turns driver duplicate-key errors into
	// gorm.ErrDuplicatedKey; the like toggle depends on it.
	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
		if err != nil {
			logrus.Errorf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				logrus.Errorf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			logrus.Errorf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		logrus.Fatal("could not connect to database after retries: ", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			logrus.Fatal("got error when getting sql.DB from gorm.DB: ", err)
		}
		if err := sqlDB.Close(); err != nil {
			logrus.Fatal("got error when closing the DB connection: ", err)
		}
	}()

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDB, err := strconv.Atoi(os.Getenv("CACHE_DB"))
	if err != nil {
		logrus.Warn("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Fatal("got error when closing the cache connection: ", err)
		}
	}()

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		logrus.Fatal("failed to open connection to cache: ", err)
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeout, err := strconv.Atoi(os.Getenv("CONTEXT_TIMEOUT"))
	if err != nil {
		logrus.Warn("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	route.Use(middleware.SetRequestContextWithTimeout(time.Duration(timeout) * time.Second))

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	threadRepo := mysqlRepo.NewThreadRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db)
	replyRepo := mysqlRepo.NewReplyRepository(db)

	// Like counts run through three layers: the DB repository is the
	// source of truth, redis caches the per-comment counts, and the
	// coordinator keeps them consistent.
	likeDBRepo := mysqlRepo.NewCommentLikeRepository(db)
	likeCache := redisRepo.NewLikeCountCache(client)

	bloomBitSize, err := strconv.ParseUint(os.Getenv("BLOOM_FILTER_SIZE"), 10, 64)
	if err != nil {
		logrus.Warn("failed to parse bloom bit size, using default size")
		bloomBitSize = defaultBloomBitSize
	}
	bloomRepo := redisRepo.NewRedisBloomRepo(client, bloomBitSize)

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	likeRefresher := workers.NewRefreshLikesWorker(likeDBRepo, likeCache)
	go likeRefresher.Start(ctx)

	likeRepo := repository.NewCommentLikeRepository(likeDBRepo, likeCache, likeRefresher)

	// Build service Layer
	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	jwtTTL, err := strconv.Atoi(os.Getenv("JWT_EXPIRE_HOURS"))
	if err != nil {
		logrus.Warn("failed to parse JWT TTL, using default 24 hours")
		jwtTTL = defaultJWTTTLHours
	}

	threadSvc := thread.NewService(threadRepo, commentRepo, replyRepo, likeRepo, bloomRepo)
	commentSvc := comment.NewService(threadRepo, commentRepo, likeRepo, bloomRepo)
	replySvc := reply.NewService(commentRepo, replyRepo)
	userSvc := user.NewService(userRepo, jwtSecret, time.Duration(jwtTTL)*time.Hour)

	threadHandler := rest.NewThreadHandler(threadSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	replyHandler := rest.NewReplyHandler(replySvc)
	userHandler := rest.NewUserHandler(userSvc)

	authMiddleware := middleware.AuthMiddleware(string(jwtSecret))

	// Prepare bloom filter
	if err := threadSvc.InitBloomFilter(ctx); err != nil {
		logrus.Errorf("failed to init bloom filter: %v", err)
		return
	}

	// Register routes
	route.POST("/register", userHandler.Register)
	route.POST("/login", userHandler.Login)

	route.GET("/threads/:id", threadHandler.GetByID)

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.POST("/threads", threadHandler.Store)
		authorized.POST("/threads/:id/comments", commentHandler.Store)
		authorized.DELETE("/threads/:id/comments/:commentId", commentHandler.Delete)
		authorized.PUT("/threads/:id/comments/:commentId/likes", commentHandler.ToggleLike)
		authorized.POST("/threads/:id/comments/:commentId/replies", replyHandler.Store)
		authorized.DELETE("/threads/:id/comments/:commentId/replies/:replyId", replyHandler.Delete)
	}

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Fatal("Server forced to shutdown: ", err)
	}

	logrus.Info("Waiting for worker to cleanup...")
	time.Sleep(2 * time.Second)

	logrus.Info("Server exiting")
}
