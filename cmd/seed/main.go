package main

import (
	"log"

	"nerdspace/internal/config"
	"nerdspace/internal/database"
	"nerdspace/internal/domain"
	"nerdspace/internal/modules/chat"
	"nerdspace/internal/modules/notification"
	"nerdspace/internal/modules/wallet"
	jwtsvc "nerdspace/internal/pkg/jwt"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	// AutoMigrate to ensure schema is up to date
	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Room{},
		&domain.ServicePricing{},
		&domain.Booking{},
		&wallet.NerdWallet{},
		&wallet.NerdTransaction{},
		&chat.Message{},
		&notification.Notification{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM chat_messages")
	db.Exec("DELETE FROM nerd_transactions")
	db.Exec("DELETE FROM nerd_wallets")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM service_pricing")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@nerdspace.vn",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("create admin failed:", err)
	}

	customerHash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
	customer := domain.User{
		Email:        "linh@example.com",
		PasswordHash: string(customerHash),
		Role:         domain.RoleCustomer,
		Name:         "Linh Nguyen",
	}
	if err := db.Create(&customer).Error; err != nil {
		log.Fatal("create customer failed:", err)
	}

	// ================== ROOMS ==================
	log.Println("Creating rooms...")

	rooms := []domain.Room{
		{Name: "Meeting Room A", Type: domain.ServiceMeeting, Capacity: 12, Description: "Whiteboard, 55\" screen, HDMI", IsActive: true},
		{Name: "Meeting Room B", Type: domain.ServiceMeeting, Capacity: 8, Description: "Round table, conference mic", IsActive: true},
		{Name: "Solo Pod 1", Type: domain.ServicePodMono, Capacity: 1, Description: "Standing desk, noise isolation", IsActive: true},
		{Name: "Solo Pod 2", Type: domain.ServicePodMono, Capacity: 1, IsActive: true},
		{Name: "Duo Pod", Type: domain.ServicePodMulti, Capacity: 4, Description: "Shared desk for small teams", IsActive: true},
	}
	for i := range rooms {
		if err := db.Create(&rooms[i]).Error; err != nil {
			log.Fatal("create room failed:", err)
		}
	}

	// ================== PRICING ==================
	log.Println("Creating pricing config...")

	pricing := []domain.ServicePricing{
		{
			ServiceType:    domain.ServiceMeeting,
			PriceSmall:     80000,
			PriceLarge:     100000,
			NerdCoinReward: 0,
		},
		{
			ServiceType:    domain.ServicePodMono,
			PriceFirstHour: 50000,
			PricePerHour:   30000,
			NerdCoinReward: 10,
		},
		{
			ServiceType:    domain.ServicePodMulti,
			PriceFirstHour: 80000,
			PricePerHour:   50000,
			NerdCoinReward: 15,
		},
	}
	for i := range pricing {
		// Upsert on service type so re-running the seed updates rates in place.
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "service_type"}},
			UpdateAll: true,
		}).Create(&pricing[i]).Error
		if err != nil {
			log.Fatal("create pricing failed:", err)
		}
	}

	log.Printf("Done. Seeded %d users, %d rooms, %d pricing rows.", 2, len(rooms), len(pricing))
	log.Println("Admin login: admin@nerdspace.vn / admin123")

	// Demo bearer tokens so local API calls work without an auth flow.
	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	if token, err := j.GenerateToken(admin.ID, admin.Role); err == nil {
		log.Printf("Admin token: %s", token)
	}
	if token, err := j.GenerateToken(customer.ID, customer.Role); err == nil {
		log.Printf("Customer token: %s", token)
	}
}
