package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("user"))
	adminAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("admin"))

	mux := pat.New()

	// Auth
	mux.Post("/register", standardMiddleware.ThenFunc(app.userHandler.Register))
	mux.Post("/login", standardMiddleware.ThenFunc(app.userHandler.Login))
	mux.Post("/logout", authMiddleware.ThenFunc(app.userHandler.Logout))

	// Users
	mux.Post("/users", adminAuthMiddleware.ThenFunc(app.userHandler.CreateUser))
	mux.Get("/users", adminAuthMiddleware.ThenFunc(app.userHandler.GetUsers))
	mux.Get("/users/:id", authMiddleware.ThenFunc(app.userHandler.GetUserByID))
	mux.Put("/users/:id", authMiddleware.ThenFunc(app.userHandler.UpdateUser))
	mux.Del("/users/:id", authMiddleware.ThenFunc(app.userHandler.DeleteUser))
	mux.Post("/users/:id/avatar", authMiddleware.ThenFunc(app.userHandler.UploadAvatar))

	// Categories (read-only: reference data is maintained out-of-band)
	mux.Get("/categories", standardMiddleware.ThenFunc(app.categoryHandler.GetAllCategories))
	mux.Get("/categories/:id", standardMiddleware.ThenFunc(app.categoryHandler.GetCategoryByID))

	// Items
	mux.Post("/items", authMiddleware.ThenFunc(app.itemHandler.CreateItem))
	mux.Get("/items", standardMiddleware.ThenFunc(app.itemHandler.GetItems))
	mux.Get("/items/:id", standardMiddleware.ThenFunc(app.itemHandler.GetItemByID))
	mux.Put("/items/:id", authMiddleware.ThenFunc(app.itemHandler.UpdateItem))
	mux.Del("/items/:id", authMiddleware.ThenFunc(app.itemHandler.DeleteItem))

	// Item images
	mux.Post("/item-images", authMiddleware.ThenFunc(app.itemImageHandler.CreateItemImage))
	mux.Get("/item-images", standardMiddleware.ThenFunc(app.itemImageHandler.GetAllItemImages))
	mux.Get("/item-images/:id", standardMiddleware.ThenFunc(app.itemImageHandler.GetItemImageByID))
	mux.Del("/item-images/:id", authMiddleware.ThenFunc(app.itemImageHandler.DeleteItemImage))

	// Bookings
	mux.Post("/bookings", authMiddleware.ThenFunc(app.bookingHandler.CreateBooking))
	mux.Get("/bookings", authMiddleware.ThenFunc(app.bookingHandler.GetBookings))
	mux.Get("/bookings/:id", authMiddleware.ThenFunc(app.bookingHandler.GetBookingByID))
	mux.Put("/bookings/:id", authMiddleware.ThenFunc(app.bookingHandler.UpdateBooking))
	mux.Post("/bookings/:id/confirm", authMiddleware.ThenFunc(app.bookingHandler.ConfirmBooking))
	mux.Post("/bookings/:id/cancel", authMiddleware.ThenFunc(app.bookingHandler.CancelBooking))

	// Reviews
	mux.Post("/reviews", authMiddleware.ThenFunc(app.reviewHandler.CreateReview))
	mux.Get("/reviews", authMiddleware.ThenFunc(app.reviewHandler.GetReviews))
	mux.Get("/reviews/:id", authMiddleware.ThenFunc(app.reviewHandler.GetReviewByID))
	mux.Put("/reviews/:id", authMiddleware.ThenFunc(app.reviewHandler.UpdateReview))
	mux.Del("/reviews/:id", authMiddleware.ThenFunc(app.reviewHandler.DeleteReview))

	return standardMiddleware.Then(mux)
}
