package models

import "errors"

const (
	TipeFoto  = "foto"
	TipeVideo = "video"
)

type Galeri struct {
	Base
	Judul     string `json:"judul"`
	Tipe      string `gorm:"size:10;index" json:"tipe"`
	URL       string `json:"url"`
	Deskripsi string `json:"deskripsi"`
}

func (Galeri) TableName() string {
	return "galeri"
}

func (g Galeri) Validate() error {
	if g.Tipe != TipeFoto && g.Tipe != TipeVideo {
		return errors.New("tipe harus foto atau video")
	}
	if g.URL == "" {
		return errors.New("url wajib diisi")
	}
	return nil
}
