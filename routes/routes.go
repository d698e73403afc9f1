package routes

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/kamil5b/sewa-alat-berat/config"
	"github.com/kamil5b/sewa-alat-berat/controllers"
	"github.com/kamil5b/sewa-alat-berat/middleware"
)

func New(cfg config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Company.Name,
		ErrorHandler: controllers.ErrorHandler,
		BodyLimit:    20 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger)
	app.Use(middleware.Metrics)
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: cfg.CORSOrigins != "" && cfg.CORSOrigins != "*",
	}))

	Setup(app)
	Static(app, cfg)
	return app
}

func perMenit(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "terlalu banyak permintaan, coba lagi nanti",
			})
		},
	})
}

func Setup(app *fiber.App) {
	//localhost:8000
	app.Get("/metrics", middleware.MetricsHandler())

	api := app.Group("/api")

	//----AUTH----
	api.Post("/register", controllers.Register)
	api.Post("/login", perMenit(10), controllers.Login)
	api.Get("/user", controllers.User)
	api.Post("/logout", controllers.Logout)

	//----PUBLIC----
	api.Get("/home", controllers.GetHome)
	api.Get("/about", controllers.GetAbout)
	api.Post("/contact", perMenit(5), controllers.PostKontak)
	api.Get("/blog", controllers.GetBlogPublik)
	api.Get("/blog/:slug", controllers.GetBlogBySlug)
	api.Get("/gallery", controllers.GetGaleriPublik)
	api.Get("/alat", controllers.GetAlatPublik)
	api.Get("/alat/:id", controllers.GetSatuAlatPublik)

	admin := api.Group("/admin", middleware.RequireAuth)

	//----ALAT----
	admin.Get("/alat", controllers.GetAllAlat)
	admin.Get("/alat/:id", controllers.GetAlat)
	admin.Post("/alat", controllers.PostAlat)
	admin.Put("/alat/:id", controllers.UpdateAlat)
	admin.Delete("/alat/:id", controllers.DeleteAlat)
	admin.Post("/alat/:id/gambar", controllers.UploadGambarAlat)

	//----BLOG----
	admin.Get("/blog", controllers.GetAllBlog)
	admin.Get("/blog/:id", controllers.GetBlog)
	admin.Post("/blog", controllers.PostBlog)
	admin.Put("/blog/:id", controllers.UpdateBlog)
	admin.Delete("/blog/:id", controllers.DeleteBlog)
	admin.Post("/blog/:id/gambar", controllers.UploadGambarBlog)

	//----GALERI----
	admin.Get("/galeri", controllers.GetGaleriPublik)
	admin.Get("/galeri/:id", controllers.GetGaleri)
	admin.Post("/galeri", controllers.PostGaleri)
	admin.Post("/galeri/upload", controllers.UploadGaleri)
	admin.Put("/galeri/:id", controllers.UpdateGaleri)
	admin.Delete("/galeri/:id", controllers.DeleteGaleri)

	//----KONTAK----
	admin.Get("/kontak", controllers.GetAllKontak)
	admin.Get("/kontak/:id", controllers.GetKontak)
	admin.Put("/kontak/:id/dibaca", controllers.TandaiKontakDibaca)
	admin.Delete("/kontak/:id", controllers.DeleteKontak)

	//----SURAT JALAN----
	admin.Get("/surat-jalan", controllers.GetAllSuratJalan)
	admin.Get("/surat-jalan/:id", controllers.GetSuratJalan)
	admin.Post("/surat-jalan", controllers.PostSuratJalan)
	admin.Put("/surat-jalan/:id", controllers.UpdateSuratJalan)
	admin.Delete("/surat-jalan/:id", controllers.DeleteSuratJalan)
	admin.Get("/surat-jalan/:id/pdf", controllers.PdfSuratJalan)

	//----SURAT PERJANJIAN----
	admin.Get("/surat-perjanjian", controllers.GetAllSuratPerjanjian)
	admin.Get("/surat-perjanjian/:id", controllers.GetSuratPerjanjian)
	admin.Post("/surat-perjanjian", controllers.PostSuratPerjanjian)
	admin.Put("/surat-perjanjian/:id", controllers.UpdateSuratPerjanjian)
	admin.Delete("/surat-perjanjian/:id", controllers.DeleteSuratPerjanjian)
	admin.Get("/surat-perjanjian/:id/pdf", controllers.PdfSuratPerjanjian)

	//----INVOICE----
	admin.Get("/invoice", controllers.GetAllInvoice)
	admin.Get("/invoice/:id", controllers.GetInvoice)
	admin.Post("/invoice", controllers.PostInvoice)
	admin.Put("/invoice/:id", controllers.UpdateInvoice)
	admin.Put("/invoice/:id/lunas", controllers.LunasiInvoice)
	admin.Delete("/invoice/:id", controllers.DeleteInvoice)
	admin.Get("/invoice/:id/pdf", controllers.PdfInvoice)

	//----BUKU BESAR----
	admin.Get("/buku-besar", controllers.GetBukuBesar)
	admin.Get("/buku-besar/akun", controllers.GetAkunBukuBesar)
	admin.Get("/buku-besar/pdf", controllers.PdfBukuBesar)
	admin.Get("/buku-besar/:id", controllers.GetEntriBukuBesar)
	admin.Post("/buku-besar", controllers.PostBukuBesar)
	admin.Put("/buku-besar/:id", controllers.UpdateBukuBesar)
	admin.Delete("/buku-besar/:id", controllers.DeleteBukuBesar)

	//----PEKERJA----
	admin.Get("/pekerja", controllers.GetAllPekerja)
	admin.Get("/pekerja/:id", controllers.GetPekerja)
	admin.Post("/pekerja", controllers.PostPekerja)
	admin.Put("/pekerja/:id", controllers.UpdatePekerja)
	admin.Delete("/pekerja/:id", controllers.DeletePekerja)

	//----GAJI----
	admin.Get("/gaji", controllers.GetAllGaji)
	admin.Get("/gaji/:id", controllers.GetGaji)
	admin.Post("/gaji", controllers.PostGaji)
	admin.Put("/gaji/:id", controllers.UpdateGaji)
	admin.Put("/gaji/:id/bayar", controllers.BayarGaji)
	admin.Delete("/gaji/:id", controllers.DeleteGaji)
	admin.Get("/gaji/:id/pdf", controllers.PdfGaji)
}

// Static serves uploaded media and, when present, the React build with a
// fallback to index.html for client-side routes.
func Static(app *fiber.App, cfg config.Config) {
	app.Static("/uploads", cfg.UploadDir)

	index := filepath.Join(cfg.PublicDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		return
	}
	app.Static("/", cfg.PublicDir)
	app.Get("/*", func(c *fiber.Ctx) error {
		if c.Path() == "/api" || strings.HasPrefix(c.Path(), "/api/") {
			return fiber.ErrNotFound
		}
		return c.SendFile(index)
	})
}
