package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Jonathan-dev2002/minishop-api/apperrors"
	"github.com/Jonathan-dev2002/minishop-api/middleware"
	"github.com/Jonathan-dev2002/minishop-api/models"
	"github.com/Jonathan-dev2002/minishop-api/services"
)

// GET /user/cart
func GetUserCart(svc services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserIDFromContext(c)
		if !ok {
			apperrors.Respond(c, apperrors.Auth("Unauthorized"))
			return
		}

		cart, err := svc.GetCart(c.Request.Context(), userID)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, models.Success(cart, "1000", "Get cart successfully."))
	}
}

// POST /user/cart — adds to the quantity if the product is already in the cart.
func AddCartItem(svc services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserIDFromContext(c)
		if !ok {
			apperrors.Respond(c, apperrors.Auth("Unauthorized"))
			return
		}

		var req models.AddToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.Respond(c, apperrors.Validation("Invalid input: "+err.Error()))
			return
		}

		cart, err := svc.AddItem(c.Request.Context(), userID, req)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, models.Success(cart, "1000", "Add item to cart successfully."))
	}
}

// PUT /user/cart/items/:item_id — sets an absolute quantity.
func UpdateCartItem(svc services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserIDFromContext(c)
		if !ok {
			apperrors.Respond(c, apperrors.Auth("Unauthorized"))
			return
		}

		itemID, err := uuid.Parse(c.Param("item_id"))
		if err != nil {
			apperrors.Respond(c, apperrors.Validation("Invalid item ID"))
			return
		}

		var req models.UpdateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.Respond(c, apperrors.Validation("Invalid input: "+err.Error()))
			return
		}

		cart, err := svc.UpdateItem(c.Request.Context(), userID, itemID, req)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, models.Success(cart, "1000", "Update cart item successfully."))
	}
}

// DELETE /user/cart/items/:item_id
func RemoveCartItem(svc services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserIDFromContext(c)
		if !ok {
			apperrors.Respond(c, apperrors.Auth("Unauthorized"))
			return
		}

		itemID, err := uuid.Parse(c.Param("item_id"))
		if err != nil {
			apperrors.Respond(c, apperrors.Validation("Invalid item ID"))
			return
		}

		cart, err := svc.RemoveItem(c.Request.Context(), userID, itemID)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, models.Success(cart, "1000", "Remove cart item successfully."))
	}
}

// GET /admin/user-cart/:user_id
func GetAdminUserCart(svc services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := uuid.Parse(c.Param("user_id"))
		if err != nil {
			apperrors.Respond(c, apperrors.Validation("Invalid user ID"))
			return
		}

		cart, err := svc.GetCart(c.Request.Context(), userID)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, models.Success(cart, "1000", "Get cart successfully."))
	}
}
