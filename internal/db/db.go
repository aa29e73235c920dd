package db

import (
	"quadro/internal/auth"
	"quadro/internal/card"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	// TranslateError so a duplicate email comes back as gorm.ErrDuplicatedKey
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&auth.User{},
		&card.Card{},
	); err != nil {
		return err
	}

	// Board listing is always "my cards, newest first"
	if err := gdb.Exec(`create index if not exists idx_cards_user_created on cards(user_id, created_at desc);`).Error; err != nil {
		return err
	}

	return nil
}
