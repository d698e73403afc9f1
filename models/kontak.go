package models

import (
	"errors"
	"strings"
)

// Kontak is a message left through the public contact form.
type Kontak struct {
	Base
	Nama    string `json:"nama"`
	Email   string `json:"email"`
	Telepon string `json:"telepon"`
	Pesan   string `gorm:"type:text" json:"pesan"`
	Dibaca  bool   `json:"dibaca"`
}

func (Kontak) TableName() string {
	return "kontak"
}

func (k Kontak) Validate() error {
	if strings.TrimSpace(k.Nama) == "" {
		return errors.New("nama wajib diisi")
	}
	if strings.TrimSpace(k.Pesan) == "" {
		return errors.New("pesan wajib diisi")
	}
	if k.Email != "" && !strings.Contains(k.Email, "@") {
		return errors.New("email tidak valid")
	}
	return nil
}
