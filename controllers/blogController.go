package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kamil5b/sewa-alat-berat/config"
	"github.com/kamil5b/sewa-alat-berat/database"
	"github.com/kamil5b/sewa-alat-berat/models"
	"github.com/kamil5b/sewa-alat-berat/utils"
)

// GET ?page=&limit=
func GetBlogPublik(c *fiber.Ctx) error {
	page, limit := pagination(c)
	posts := []models.Blog{}
	var total int64
	q := database.DB.Model(&models.Blog{}).Where("published = ?", true)
	if err := q.Count(&total).Error; err != nil {
		return err
	}
	err := q.Order("published_at desc, id desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data":  posts,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GET
func GetBlogBySlug(c *fiber.Ctx) error {
	var post models.Blog
	database.DB.Where("slug = ? AND published = ?", c.Params("slug"), true).Limit(1).Find(&post)
	if post.ID == 0 {
		return errNotFound
	}
	return c.JSON(post)
}

// GET
func GetAllBlog(c *fiber.Ctx) error {
	posts := []models.Blog{}
	q := database.DB.Order("id desc")
	if s := c.Query("q"); s != "" {
		q = q.Where("judul LIKE ?", like(s))
	}
	if err := q.Find(&posts).Error; err != nil {
		return err
	}
	return c.JSON(posts)
}

// GET
func GetBlog(c *fiber.Ctx) error {
	var post models.Blog
	if err := findByID(c, &post); err != nil {
		return err
	}
	return c.JSON(post)
}

// POST
func PostBlog(c *fiber.Ctx) error {
	/*
		{
			judul:
			slug: (opsional)
			ringkasan:
			konten:
			penulis:
			published:
		}
	*/
	var post models.Blog
	if err := parseBody(c, &post); err != nil {
		return err
	}
	post.Base = models.Base{}
	post.PublishedAt = nil
	if err := validate(post); err != nil {
		return err
	}
	slug, err := uniqueSlug(post.Slug, post.Judul, 0)
	if err != nil {
		return err
	}
	post.Slug = slug
	post.MarkPublished(time.Now())
	if err := database.DB.Create(&post).Error; err != nil {
		return err
	}
	return success(c, fiber.StatusCreated, post)
}

// PUT
func UpdateBlog(c *fiber.Ctx) error {
	var post models.Blog
	if err := findByID(c, &post); err != nil {
		return err
	}
	base, gambar, publishedAt := post.Base, post.Gambar, post.PublishedAt
	if err := parseBody(c, &post); err != nil {
		return err
	}
	post.Base, post.PublishedAt = base, publishedAt
	if post.Gambar == "" {
		post.Gambar = gambar
	}
	if err := validate(post); err != nil {
		return err
	}
	slug, err := uniqueSlug(post.Slug, post.Judul, post.ID)
	if err != nil {
		return err
	}
	post.Slug = slug
	post.MarkPublished(time.Now())
	if err := database.DB.Save(&post).Error; err != nil {
		return err
	}
	return success(c, fiber.StatusOK, post)
}

// DELETE
func DeleteBlog(c *fiber.Ctx) error {
	return deleteByID(c, &models.Blog{})
}

// POST multipart: file
func UploadGambarBlog(c *fiber.Ctx) error {
	var post models.Blog
	if err := findByID(c, &post); err != nil {
		return err
	}
	path, err := saveImage(c)
	if err != nil {
		return err
	}
	utils.RemoveUpload(config.App.UploadDir, post.Gambar)
	post.Gambar = path
	if err := database.DB.Save(&post).Error; err != nil {
		return err
	}
	return success(c, fiber.StatusOK, post)
}

// uniqueSlug slugifies the requested slug (or the title when empty) and
// appends -2, -3, ... until no other post uses it.
func uniqueSlug(requested, judul string, exceptID uint) (string, error) {
	base := utils.Slugify(requested)
	if base == "" {
		base = utils.Slugify(judul)
	}
	if base == "" {
		base = "artikel"
	}
	slug := base
	for i := 2; ; i++ {
		var n int64
		err := database.DB.Model(&models.Blog{}).
			Where("slug = ? AND id <> ?", slug, exceptID).
			Count(&n).Error
		if err != nil {
			return "", err
		}
		if n == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
