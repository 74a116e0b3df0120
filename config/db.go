package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hostel-backend/models"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hostel_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := Migrate(DB); err != nil {
		return err
	}

	SeedDatabase(DB)
	return nil
}

// Migrate applies the schema in parent->child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Room{},
		&models.Guest{},
		&models.Booking{},
		&models.Transaction{},
	)
}

func emptyBeds(capacity int) datatypes.JSONSlice[models.Bed] {
	beds := make([]models.Bed, 0, capacity)
	for i := 1; i <= capacity; i++ {
		beds = append(beds, models.Bed{Number: i})
	}
	return datatypes.NewJSONSlice(beds)
}

// SeedDatabase loads a starter room inventory when the rooms table is empty,
// so a fresh install shows a usable grid.
func SeedDatabase(db *gorm.DB) {
	var roomCount int64
	db.Model(&models.Room{}).Count(&roomCount)
	if roomCount > 0 {
		log.Println("Rooms already seeded")
		return
	}

	wifi := datatypes.NewJSONSlice([]string{"wifi", "lockers"})
	private := datatypes.NewJSONSlice([]string{"wifi", "ensuite", "ac"})

	rooms := []models.Room{
		{RoomNumber: "101", Type: models.RoomTypeDorm, Floor: 1, Capacity: 6, Status: models.RoomStatusAvailable, PricePerNight: 18, Amenities: wifi, Beds: emptyBeds(6)},
		{RoomNumber: "102", Type: models.RoomTypeDorm, Floor: 1, Capacity: 8, Status: models.RoomStatusAvailable, PricePerNight: 15, Amenities: wifi, Beds: emptyBeds(8)},
		{RoomNumber: "103", Type: models.RoomTypeShared, Floor: 1, Capacity: 3, Status: models.RoomStatusAvailable, PricePerNight: 30, Amenities: wifi},
		{RoomNumber: "201", Type: models.RoomTypePrivate, Floor: 2, Capacity: 2, Status: models.RoomStatusAvailable, PricePerNight: 55, Amenities: private},
		{RoomNumber: "202", Type: models.RoomTypePrivate, Floor: 2, Capacity: 2, Status: models.RoomStatusAvailable, PricePerNight: 55, Amenities: private},
		{RoomNumber: "203", Type: models.RoomTypeDorm, Floor: 2, Capacity: 4, Status: models.RoomStatusCleaning, StatusReason: "Turnover after group departure", PricePerNight: 20, Amenities: wifi, Beds: emptyBeds(4)},
		{RoomNumber: "301", Type: models.RoomTypePrivate, Floor: 3, Capacity: 3, Status: models.RoomStatusMaintenance, StatusReason: "Bathroom plumbing repair", PricePerNight: 70, Amenities: private},
	}

	if err := db.Create(&rooms).Error; err != nil {
		log.Printf("warning: failed to seed rooms: %v", err)
		return
	}
	log.Println("Rooms seeded")
}
