package aqua

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/aquarium-service/pkg/common"
	"liyu1981.xyz/aquarium-service/pkg/models"
)

const tokenBytes = 16

func authLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameAquaCore,
		zap.String(common.LoggerFieldAquaCategory, common.LoggerCategoryAuth),
	)
}

func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func (a *Aqua) login(username, password string) (string, error) {
	logger := authLogger()

	var user models.User
	err := a.Db.Conn.First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && user.Password != password) {
		logger.Info("Rejected login", zap.String("username", username))
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	token, err := newToken()
	if err != nil {
		return "", err
	}

	now := a.clock()
	session := models.Session{
		Token:     token,
		Username:  user.Username,
		CreatedAt: now,
	}
	if a.SessionTTL > 0 {
		expiresAt := now.Add(a.SessionTTL)
		session.ExpiresAt = &expiresAt
	}

	if err := a.Db.Conn.Create(&session).Error; err != nil {
		return "", err
	}

	logger.Info("Opened session", zap.String("username", user.Username), zap.Timep("expires_at", session.ExpiresAt))

	return token, nil
}

func (a *Aqua) logout(token string) error {
	if err := a.Db.Conn.Delete(&models.Session{}, "token = ?", token).Error; err != nil {
		return err
	}
	authLogger().Info("Closed session")
	return nil
}

func (a *Aqua) resolveToken(token string) (string, error) {
	if token == "" {
		return "", ErrInvalidToken
	}

	var session models.Session
	err := a.Db.Conn.First(&session, "token = ?", token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrInvalidToken
	}
	if err != nil {
		return "", err
	}

	if session.Expired(a.clock()) {
		if err := a.Db.Conn.Delete(&models.Session{}, "token = ?", token).Error; err != nil {
			return "", err
		}
		authLogger().Info("Dropped expired session", zap.String("username", session.Username))
		return "", ErrInvalidToken
	}

	return session.Username, nil
}

func (a *Aqua) register(username, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return validationError("username and password are required")
	}

	err := a.Db.Conn.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: username %q already exists", ErrConflict, username)
		}
		return tx.Create(&models.User{Username: username, Password: password}).Error
	})
	if err != nil {
		return err
	}

	authLogger().Info("Registered user", zap.String("username", username))
	return nil
}

func (a *Aqua) seedUser(username, password string) error {
	err := a.register(username, password)
	if errors.Is(err, ErrConflict) {
		return nil
	}
	return err
}

func (a *Aqua) purgeExpiredSessions() (int64, error) {
	res := a.Db.Conn.
		Where("expires_at IS NOT NULL AND expires_at <= ?", a.clock()).
		Delete(&models.Session{})
	return res.RowsAffected, res.Error
}

type IAuthImpl struct {
	aqua *Aqua
}

func (ia *IAuthImpl) Login(username, password string) (string, error) {
	return ia.aqua.login(username, password)
}

func (ia *IAuthImpl) Logout(token string) error {
	return ia.aqua.logout(token)
}

func (ia *IAuthImpl) ResolveToken(token string) (string, error) {
	return ia.aqua.resolveToken(token)
}

func (ia *IAuthImpl) Register(username, password string) error {
	return ia.aqua.register(username, password)
}

func (ia *IAuthImpl) SeedUser(username, password string) error {
	return ia.aqua.seedUser(username, password)
}

func (ia *IAuthImpl) PurgeExpiredSessions() (int64, error) {
	return ia.aqua.purgeExpiredSessions()
}

func (a *Aqua) GetIAuth() IAuth {
	return &IAuthImpl{aqua: a}
}
