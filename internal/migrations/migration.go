package migrations

import (
	"log"

	"order_manager/internal/models"

	"gorm.io/gorm"
)

// RunMigrations applies the forward-only schema at startup and seeds the
// reference rows every environment needs.
func RunMigrations(db *gorm.DB, advanceAmountLabel string) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.UserRole{},
		&models.User{},
		&models.Distributor{},
		&models.Manager{},
		&models.Executive{},
		&models.ProductCategory{},
		&models.ProductSubCategory{},
		&models.Product{},
		&models.ProductImage{},
		&models.PaymentTerm{},
		&models.Cart{},
		&models.Order{},
		&models.LineItem{},
		&models.SalesExecOrderRelation{},
		&models.StoresExecOrderRelation{},
		&models.ScannedProduct{},
	)
	if err != nil {
		return err
	}

	if err := seedDefaultData(db, advanceAmountLabel); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// seedDefaultData creates the user roles and the advance-amount sentinel row.
func seedDefaultData(db *gorm.DB, advanceAmountLabel string) error {
	roles := []string{
		models.RoleSystemAdmin,
		models.RoleDistributor,
		models.RoleManager,
		models.RoleSalesExecutive,
		models.RoleStoresExecutive,
		models.RoleWindingExecutive,
		models.RoleAssemblyExecutive,
		models.RoleTestingExecutive,
		models.RolePackingExecutive,
		models.RoleQCExecutive,
		models.RolePlanning,
		models.RoleAccounts,
	}

	for _, role := range roles {
		var count int64
		if err := db.Model(&models.UserRole{}).Where("user_role = ?", role).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&models.UserRole{UserRole: role}).Error; err != nil {
				return err
			}
		}
	}

	// Sentinel payment-terms row meaning "no advance required".
	var count int64
	if err := db.Model(&models.PaymentTerm{}).Where("advance_amt = ?", advanceAmountLabel).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := db.Create(&models.PaymentTerm{Label: advanceAmountLabel}).Error; err != nil {
			return err
		}
		log.Printf("Created payment term sentinel %q", advanceAmountLabel)
	}

	return nil
}
