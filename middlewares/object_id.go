package middlewares

import (
	"fmt"
	"net/http"

	"github.com/CPU-commits/Intranet_BSubjects/res"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ObjectIDParams rejects the request with 400 when a named path
// param is not a hex ObjectID
func ObjectIDParams(params ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		for _, param := range params {
			value := ctx.Param(param)
			if value == "" {
				continue
			}
			if !primitive.IsValidObjectID(value) {
				ctx.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
					Success: false,
					Message: fmt.Sprintf("%s must be a valid id", param),
				})
				return
			}
		}
		ctx.Next()
	}
}
