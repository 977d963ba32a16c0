package routes

import (
	"github.com/gin-gonic/gin"

	"brf/controllers"
	"brf/errors"
	mw "brf/middleware"
	"brf/response"
	"brf/services"
	"brf/services/logger"
	"brf/store"
)

// Deps gom các phụ thuộc để dựng route table của demo server.
type Deps struct {
	Store  store.Store
	Rooms  *services.RoomService
	Logger logger.Logger
}

func SetupRoutes(router *gin.Engine, deps Deps) {
	users := services.NewUserService(services.UserServiceOptions{
		Store:  deps.Store,
		Logger: deps.Logger,
	})
	bookings := services.NewBookingService(services.BookingServiceOptions{
		Store:  deps.Store,
		Rooms:  deps.Rooms,
		Logger: deps.Logger,
	})
	reviews := services.NewReviewService(services.ReviewServiceOptions{
		Store:  deps.Store,
		Logger: deps.Logger,
	})

	authController := controllers.NewAuthController(users)
	userController := controllers.NewUserController(users)
	bookingController := controllers.NewBookingController(bookings)
	reviewController := controllers.NewReviewController(reviews)
	roomController := controllers.NewRoomController(deps.Rooms)

	router.Use(mw.RequestIDMiddleware())

	v1 := router.Group("/api/v1")

	v1.POST("/auth/registration", authController.Register)
	v1.POST("/auth/login", authController.Login)

	v1.GET("/get-user", mw.AuthMiddleware(users), userController.GetUser)
	v1.PUT("/update-user", mw.AuthMiddleware(users), userController.UpdateUser)

	v1.GET("/get-user-booking-orders", mw.AuthMiddleware(users), bookingController.GetUserBookingOrders)
	v1.POST("/placed-booking-order/:roomId", mw.AuthMiddleware(users), bookingController.PlaceBookingOrder)
	v1.PUT("/cancel-booking-order/:id", bookingController.CancelBookingOrder)

	v1.GET("/get-room-reviews-list/:roomId", reviewController.GetRoomReviews)
	v1.PUT("/edit-room-review/:reviewId", reviewController.EditRoomReview)

	v1.GET("/get-rooms-list", roomController.GetRoomsList)
	v1.GET("/get-featured-rooms-list", roomController.GetFeaturedRoomsList)
	v1.GET("/search-rooms", roomController.SearchRooms)

	// Everything else, DELETE included, answers with the generic failure so
	// both adapters fail the same way.
	router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, errors.ErrEndpointUnavailable.Error())
	})
}
