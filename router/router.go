package router

import (
	"net/http"

	"gritline/app/controllers"
	"gritline/app/middleware"
)

type Controllers struct {
	Auth         *controllers.AuthController
	Gallery      *controllers.GalleryController
	Testimonials *controllers.TestimonialController
	Contact      *controllers.ContactController
	Blog         *controllers.BlogController
	Backup       *controllers.BackupController
}

func New(c Controllers, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/login", c.Auth.Login)
	mux.HandleFunc("/api/gallery", c.Gallery.ListPublic)
	mux.HandleFunc("/api/testimonials", c.Testimonials.ListPublic)
	mux.HandleFunc("/api/blog", c.Blog.ListPublic)
	mux.HandleFunc("/api/blog/post", c.Blog.GetPublic)
	mux.HandleFunc("/api/contact", c.Contact.Submit)

	admin := func(h http.HandlerFunc) http.Handler { return mw.RequireAdmin(h) }

	// admin content management
	mux.Handle("/admin/gallery/list", admin(c.Gallery.ListAdmin))
	mux.Handle("/admin/gallery/create", admin(c.Gallery.Create))
	mux.Handle("/admin/gallery/update", admin(c.Gallery.Update))
	mux.Handle("/admin/gallery/delete", admin(c.Gallery.Delete))
	mux.Handle("/admin/gallery/upload", admin(c.Gallery.Upload))
	mux.Handle("/admin/testimonials/list", admin(c.Testimonials.ListAdmin))
	mux.Handle("/admin/testimonials/create", admin(c.Testimonials.Create))
	mux.Handle("/admin/testimonials/approve", admin(c.Testimonials.Approve))
	mux.Handle("/admin/testimonials/delete", admin(c.Testimonials.Delete))
	mux.Handle("/admin/contacts/list", admin(c.Contact.ListAdmin))
	mux.Handle("/admin/contacts/handled", admin(c.Contact.MarkHandled))
	mux.Handle("/admin/contacts/delete", admin(c.Contact.Delete))
	mux.Handle("/admin/blog/list", admin(c.Blog.ListAdmin))
	mux.Handle("/admin/blog/create", admin(c.Blog.Create))
	mux.Handle("/admin/blog/update", admin(c.Blog.Update))
	mux.Handle("/admin/blog/delete", admin(c.Blog.Delete))

	// admin backup & restore
	mux.Handle("/admin/backup/create", admin(c.Backup.Create))
	mux.Handle("/admin/backup/list", admin(c.Backup.List))
	mux.Handle("/admin/backup/get", admin(c.Backup.Get))
	mux.Handle("/admin/backup/download", admin(c.Backup.Download))
	mux.Handle("/admin/backup/restore", admin(c.Backup.Restore))
	mux.Handle("/admin/backup/delete", admin(c.Backup.Delete))

	return mux
}
