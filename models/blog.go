package models

import (
	"errors"
	"time"
)

type Blog struct {
	Base
	Judul       string     `json:"judul"`
	Slug        string     `gorm:"size:191;index" json:"slug"`
	Ringkasan   string     `json:"ringkasan"`
	Konten      string     `gorm:"type:text" json:"konten"`
	Gambar      string     `json:"gambar"`
	Penulis     string     `json:"penulis"`
	Published   bool       `gorm:"index" json:"published"`
	PublishedAt *time.Time `json:"published_at"`
}

func (Blog) TableName() string {
	return "blog"
}

func (b Blog) Validate() error {
	if b.Judul == "" {
		return errors.New("judul wajib diisi")
	}
	return nil
}

// MarkPublished stamps PublishedAt the first time a post goes public.
func (b *Blog) MarkPublished(now time.Time) {
	if b.Published && b.PublishedAt == nil {
		b.PublishedAt = &now
	}
}
