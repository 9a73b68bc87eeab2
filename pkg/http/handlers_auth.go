package http

import (
	"errors"
	"net/http"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"github.com/gin-gonic/gin"

	"liyu1981.xyz/aquarium-service/pkg/aqua"
)

type CredentialsRequest struct {
	Username string `json:"username" zog:"username"`
	Password string `json:"password" zog:"password"`
}

var credentialsRequestSchema = z.Struct(z.Shape{
	"Username": z.String().Min(1).Required(),
	"Password": z.String().Min(1).Required(),
})

func (rs *RestfulServer) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := credentialsRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		// a malformed login is just another failed login
		rs.Metrics.RecordLogin(false)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := rs.Aqua.Auth.Login(req.Username, req.Password)
	if errors.Is(err, aqua.ErrUnauthorized) {
		rs.Metrics.RecordLogin(false)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if err != nil {
		rs.respondError(c, err)
		return
	}

	rs.Metrics.RecordLogin(true)
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (rs *RestfulServer) Logout(c *gin.Context) {
	if err := rs.Aqua.Auth.Logout(c.GetString(ContextKeyToken)); err != nil {
		rs.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (rs *RestfulServer) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"username": c.GetString(ContextKeyUsername)})
}

func (rs *RestfulServer) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := credentialsRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required", "issues": err})
		return
	}

	if err := rs.Aqua.Auth.Register(req.Username, req.Password); err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user created"})
}
