package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"yuvasabha_backend/internals/configs"
	AttendanceModel "yuvasabha_backend/internals/features/attendance/attendance/model"
	SabhaUserModel "yuvasabha_backend/internals/features/members/sabha_users/model"
	DesignationModel "yuvasabha_backend/internals/features/organization/designations/model"
	MandalModel "yuvasabha_backend/internals/features/organization/mandals/model"
	ZoneModel "yuvasabha_backend/internals/features/organization/zones/model"
	RoleModel "yuvasabha_backend/internals/features/users/role/model"
	UserModel "yuvasabha_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] connecting to PostgreSQL...")

	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=yuvasabha&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // required for PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("[ERROR] failed to connect DB: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func Migrate() {
	if err := DB.AutoMigrate(
		&ZoneModel.ZoneModel{},
		&MandalModel.MandalModel{},
		&DesignationModel.DesignationModel{},
		&RoleModel.RoleModel{},
		&UserModel.UserModel{},
		&UserModel.UserAccessibleMandal{},
		&SabhaUserModel.SabhaUserModel{},
		&AttendanceModel.AttendanceModel{},
	); err != nil {
		log.Fatalf("[ERROR] automigrate failed: %v", err)
	}

	// One attendance row per (person, day, context) tuple. mandal_id is NULL for the
	// ravi_sabha / yst contexts, so the index has to collapse NULL to a sentinel.
	if err := DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_attendance_person_day_context
		ON attendances (
			attendance_sabha_user_id,
			attendance_day,
			attendance_context,
			COALESCE(attendance_mandal_id, '00000000-0000-0000-0000-000000000000'::uuid)
		)
	`).Error; err != nil {
		log.Fatalf("[ERROR] attendance unique index: %v", err)
	}

	log.Println("[INFO] schema migrated")
}
