package usecase

import (
	"errors"

	"sipensiun/internal/model"
	"sipensiun/internal/repository"
	"sipensiun/internal/token"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUsecase struct {
	repo   repository.ASNRepository
	tokens *token.Manager
}

func NewAuthUsecase(repo repository.ASNRepository, tokens *token.Manager) *AuthUsecase {
	return &AuthUsecase{repo: repo, tokens: tokens}
}

func (u *AuthUsecase) Login(nip, password string) (string, *model.ASN, error) {
	// 1. Cari user berdasarkan NIP
	asn, err := u.repo.FindByNIP(nip)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	// 2. Cek password
	if err := bcrypt.CompareHashAndPassword([]byte(asn.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !asn.IsActive {
		return "", nil, ErrInactive
	}

	tok, err := u.issue(asn, 0)
	return tok, asn, err
}

func (u *AuthUsecase) Me(id uint) (*model.ASN, error) {
	asn, err := u.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return asn, err
}

// Impersonate menerbitkan token atas nama target. Hanya superadmin, dan
// superadmin lain tidak bisa di-impersonate.
func (u *AuthUsecase) Impersonate(actor *token.Claims, targetID uint) (string, *model.ASN, error) {
	if actor.Role != model.RoleSuperadmin || actor.ImpersonatorID != 0 {
		return "", nil, ErrForbidden
	}
	target, err := u.Me(targetID)
	if err != nil {
		return "", nil, err
	}
	if target.Role.NamaRole == model.RoleSuperadmin || target.ID == actor.UserID {
		return "", nil, ErrForbidden
	}
	tok, err := u.issue(target, actor.UserID)
	return tok, target, err
}

// StopImpersonation mengembalikan token milik superadmin asal.
func (u *AuthUsecase) StopImpersonation(current *token.Claims, targetID uint) (string, *model.ASN, error) {
	if current.ImpersonatorID == 0 {
		return "", nil, ErrNotImpersonating
	}
	if targetID != 0 && targetID != current.UserID {
		return "", nil, ErrForbidden
	}
	origin, err := u.Me(current.ImpersonatorID)
	if err != nil {
		return "", nil, err
	}
	tok, err := u.issue(origin, 0)
	return tok, origin, err
}

func (u *AuthUsecase) issue(asn *model.ASN, impersonator uint) (string, error) {
	return u.tokens.Sign(token.Claims{
		UserID:         asn.ID,
		NIP:            asn.NIP,
		Role:           asn.Role.NamaRole,
		UnitKerjaID:    asn.UnitKerjaID,
		ImpersonatorID: impersonator,
	})
}

// HashPassword dipakai seeder dan admin saat membuat akun.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(b), err
}
