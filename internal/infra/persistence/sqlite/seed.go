package sqlite

import (
	"time"

	"mazraa/internal/domain/entity"
	"mazraa/internal/domain/service"
	"mazraa/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Fixed IDs for the seed accounts so tests and fixtures can reference them.
var (
	SeedFarmerID   = uuid.MustParse("0c2d34a1-9a30-4c63-8f21-111111111111")
	SeedMerchantID = uuid.MustParse("0c2d34a1-9a30-4c63-8f21-222222222222")
)

// SeedPassword is the password of both seed accounts.
const SeedPassword = "password123"

// Seed loads the initial dataset: two demo accounts, the merchant's product
// listings, two open orders and the notification feed.
func Seed(db *gorm.DB, hasher service.PasswordHasher) error {
	hash, err := hasher.Hash(SeedPassword)
	if err != nil {
		return errors.Wrap(err, "hash seed password")
	}

	now := time.Now()

	users := []*model.UserModel{
		{
			ID:           SeedFarmerID,
			Username:     "saleh",
			Name:         "صالح الأحمدي",
			Role:         entity.RoleFarmer.String(),
			Phone:        "777-0101",
			PasswordHash: hash,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           SeedMerchantID,
			Username:     "aisha",
			Name:         "عائشة محمد",
			Role:         entity.RoleMerchant.String(),
			Phone:        "777-0102",
			PasswordHash: hash,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
	if err := db.Create(users).Error; err != nil {
		return errors.Wrap(err, "seed users")
	}

	products := []*model.ProductModel{
		{
			ID:          uuid.New(),
			Name:        "مبيد فطري عضوي",
			Description: "فعال ضد البياض الدقيقي والزغبي. آمن على البيئة ومناسب للزراعة العضوية. يتم رشه كل 15 يومًا للوقاية.",
			Price:       decimal.NewFromInt(1500),
			ImageURL:    "https://i.ibb.co/Jq0bJtV/organic-fungicide.jpg",
			MerchantID:  SeedMerchantID,
			Status:      string(entity.ModerationApproved),
			CreatedAt:   now.Add(-96 * time.Hour),
			UpdatedAt:   now.Add(-96 * time.Hour),
		},
		{
			ID:          uuid.New(),
			Name:        "سماد نيتروجيني",
			Description: "لزيادة النمو الخضري وتقوية أوراق النباتات. مثالي لمراحل النمو الأولى. يضاف مع مياه الري.",
			Price:       decimal.NewFromInt(2500),
			ImageURL:    "https://i.ibb.co/yQxG8G0/nitrogen-fertilizer.jpg",
			MerchantID:  SeedMerchantID,
			Status:      string(entity.ModerationApproved),
			CreatedAt:   now.Add(-72 * time.Hour),
			UpdatedAt:   now.Add(-72 * time.Hour),
		},
		{
			ID:          uuid.New(),
			Name:        "زيت النيم",
			Description: "مكافح طبيعي للحشرات والآفات مثل المن والعناكب. يعمل كطارد ومنظم لنمو الحشرات. يُخلط بالماء والصابون ويرش على الأوراق.",
			Price:       decimal.NewFromInt(2000),
			ImageURL:    "https://i.ibb.co/1M2yqY1/neem-oil.jpg",
			MerchantID:  SeedMerchantID,
			Status:      string(entity.ModerationApproved),
			CreatedAt:   now.Add(-48 * time.Hour),
			UpdatedAt:   now.Add(-48 * time.Hour),
		},
		{
			ID:          uuid.New(),
			Name:        "مبيد حشري",
			Description: "فعال للقضاء على المن والذبابة البيضاء. تأثير سريع وفعالية عالية. يجب اتباع تعليمات السلامة عند الاستخدام.",
			Price:       decimal.NewFromInt(1800),
			ImageURL:    "https://i.ibb.co/zV7HhV0/insecticide.jpg",
			MerchantID:  SeedMerchantID,
			Status:      string(entity.ModerationApproved),
			CreatedAt:   now.Add(-24 * time.Hour),
			UpdatedAt:   now.Add(-24 * time.Hour),
		},
	}
	if err := db.Create(products).Error; err != nil {
		return errors.Wrap(err, "seed products")
	}

	orders := []*model.OrderModel{
		{
			ID:        uuid.New(),
			ProductID: products[0].ID,
			FarmerID:  SeedFarmerID,
			Quantity:  2,
			Status:    string(entity.OrderPending),
			CreatedAt: now.Add(-36 * time.Hour),
		},
		{
			ID:        uuid.New(),
			ProductID: products[2].ID,
			FarmerID:  SeedFarmerID,
			Quantity:  1,
			Status:    string(entity.OrderPending),
			CreatedAt: now.Add(-12 * time.Hour),
		},
	}
	if err := db.Create(orders).Error; err != nil {
		return errors.Wrap(err, "seed orders")
	}

	notifications := seedNotifications(now)
	if err := db.Create(notifications).Error; err != nil {
		return errors.Wrap(err, "seed notifications")
	}

	return nil
}

// seedNotifications builds the initial feed: a month-dependent advisory
// broadcast to farmers, plus one order notification for the seed merchant.
func seedNotifications(now time.Time) []*model.NotificationModel {
	farmerRole := entity.RoleFarmer.String()
	out := make([]*model.NotificationModel, 0, 3)

	switch now.Month() {
	case time.May:
		out = append(out,
			&model.NotificationModel{
				ID:        uuid.New(),
				Role:      farmerRole,
				Type:      string(entity.NotificationInfo),
				Title:     "زراعة شهر مايو",
				Message:   "الوقت مثالي لزراعة الذرة الشامية والبطيخ. تأكد من تجهيز التربة جيداً.",
				CreatedAt: now,
			},
			&model.NotificationModel{
				ID:        uuid.New(),
				Role:      farmerRole,
				Type:      string(entity.NotificationAlert),
				Title:     "تحذير من حشرة المن",
				Message:   "مع ارتفاع درجات الحرارة، يزداد نشاط حشرة المن. قم بفحص نباتاتك بانتظام.",
				IsRead:    true,
				CreatedAt: now.Add(-3 * 24 * time.Hour),
			},
		)
	case time.June:
		out = append(out, &model.NotificationModel{
			ID:        uuid.New(),
			Role:      farmerRole,
			Type:      string(entity.NotificationInfo),
			Title:     "حصاد شهر يونيو",
			Message:   "بدء موسم حصاد بعض أنواع الخضروات الصيفية. احرص على الحصاد في الصباح الباكر.",
			CreatedAt: now,
		})
	default:
		out = append(out, &model.NotificationModel{
			ID:        uuid.New(),
			Role:      farmerRole,
			Type:      string(entity.NotificationInfo),
			Title:     "نصيحة عامة",
			Message:   "تأكد من انتظام الري وتجنب الإفراط في استخدام المياه للحفاظ على صحة الجذور.",
			CreatedAt: now,
		})
	}

	merchantID := SeedMerchantID
	out = append(out, &model.NotificationModel{
		ID:        uuid.New(),
		UserID:    &merchantID,
		Type:      string(entity.NotificationOrder),
		Title:     "لديك طلب جديد!",
		Message:   "قام المزارع صالح الأحمدي بطلب منتج \"مبيد فطري عضوي\" بكمية 2.",
		CreatedAt: now.Add(-24 * time.Hour),
	})

	return out
}
