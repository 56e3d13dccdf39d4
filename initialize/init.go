package initialize

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gritline/app/cache"
	"gritline/app/controllers"
	"gritline/app/db"
	jwtutil "gritline/app/jwt"
	"gritline/app/middleware"
	"gritline/app/models"
	"gritline/app/repo"
	"gritline/app/services"
	"gritline/app/storage"
	"gritline/config"
	"gritline/global"
	"gritline/router"

	"github.com/klauspost/compress/gzhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg     *config.Config
	DB      *gorm.DB
	Router  http.Handler
	Blobs   storage.Storage
	Users   *services.UserService
	Backups *services.BackupService
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	gdb, err := db.Connect(db.Config{
		Driver: cfg.DB.Driver, Host: cfg.DB.Host, Port: cfg.DB.Port,
		User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name, Path: cfg.DB.Path,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(
		&models.User{}, &models.GalleryItem{}, &models.Testimonial{},
		&models.ContactSubmission{}, &models.BlogPost{}, &models.BackupRecord{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if cfg.Redis.Addr != "" {
		global.Rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Pass, DB: cfg.Redis.DB})
	}
	contentCache := cache.New(global.Rdb, 5*time.Minute)

	blobs, err := buildStorage(cfg)
	if err != nil {
		return nil, err
	}

	// Repositories
	userRepo := repo.NewUserRepository(gdb)
	galleryRepo := repo.NewGalleryRepository(gdb)
	testimonialRepo := repo.NewTestimonialRepository(gdb)
	contactRepo := repo.NewContactRepository(gdb)
	blogRepo := repo.NewBlogRepository(gdb)
	backupRepo := repo.NewBackupRecordRepository(gdb)

	// Services
	userSvc := services.NewUserService(userRepo)
	gallerySvc := services.NewGalleryService(galleryRepo, blobs, contentCache)
	testimonialSvc := services.NewTestimonialService(testimonialRepo, contentCache)
	contactSvc := services.NewContactService(contactRepo)
	blogSvc := services.NewBlogService(blogRepo, contentCache)
	backupSvc := services.NewBackupService(gdb, backupRepo, blobs, cfg.Backup.KeyPrefix)

	if cfg.Admin.Password != "" {
		if err := userSvc.EnsureAdmin(cfg.Admin.Username, cfg.Admin.Password); err != nil {
			global.Logger.Warn().Err(err).Msg("ensure admin failed")
		}
	}

	// Controllers
	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}
	mw := &middleware.Auth{Signer: signer}
	h := router.New(router.Controllers{
		Auth:         controllers.NewAuthController(userSvc, signer),
		Gallery:      controllers.NewGalleryController(gallerySvc),
		Testimonials: controllers.NewTestimonialController(testimonialSvc),
		Contact:      controllers.NewContactController(contactSvc),
		Blog:         controllers.NewBlogController(blogSvc),
		Backup:       controllers.NewBackupController(backupSvc),
	}, mw)
	h = middleware.Logging(gzhttp.GzipHandler(h))

	return &App{Cfg: cfg, DB: gdb, Router: h, Blobs: blobs, Users: userSvc, Backups: backupSvc}, nil
}

func buildStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage.Backend {
	case "s3":
		s3s, err := storage.NewS3Storage(context.Background(), storage.S3Config{
			Bucket: cfg.Storage.S3.Bucket, Region: cfg.Storage.S3.Region, Endpoint: cfg.Storage.S3.Endpoint,
			AccessKey: cfg.Storage.S3.AccessKey, SecretKey: cfg.Storage.S3.SecretKey, PublicURL: cfg.Storage.S3.PublicURL,
		})
		if err != nil {
			return nil, fmt.Errorf("configure s3 storage: %w", err)
		}
		return s3s, nil
	default:
		return storage.NewLocalStorage(cfg.Storage.LocalDir, cfg.Storage.LocalURL)
	}
}
