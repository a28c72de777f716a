package usershandler

import (
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"store-ops-backend/db"
	authutils "store-ops-backend/lib/utils/auth-utils"
	"store-ops-backend/lib/users/store"
	"store-ops-backend/models/apperrors"
	usersapimodels "store-ops-backend/models/api/users"
	dbmodels "store-ops-backend/models/db"

	"github.com/pkg/errors"
)

type Provider interface {
	Register(request usersapimodels.RegisterRequest) (view usersapimodels.UserView, err error)
	Login(request usersapimodels.LoginRequest) (response usersapimodels.LoginResponse, err error)
	Get(id string) (view usersapimodels.UserView, err error)
	List() (list []usersapimodels.UserView, err error)
	Update(id string, request usersapimodels.UpdateRequest) (view usersapimodels.UserView, err error)
	Delete(id string) error
	SetAvatar(id, avatarURL string) (view usersapimodels.UserView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: store.NewInstance(db.DB),
	}
}

type impl struct {
	store store.Provider
}

func (i impl) Register(request usersapimodels.RegisterRequest) (usersapimodels.UserView, error) {
	logger := log.WithField("phone", request.Phone)
	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return usersapimodels.UserView{}, errors.Wrap(err, "failed to hash password")
	}
	rec := dbmodels.StaffUser{
		Name:     request.Name,
		Phone:    request.Phone,
		Password: string(hash),
		Gender:   request.Gender,
		Address:  request.Address,
		IsAdmin:  request.IsAdmin,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		if errors.Is(err, store.ErrPhoneTaken) {
			return usersapimodels.UserView{}, apperrors.NewConflict("phone already registered")
		}
		return usersapimodels.UserView{}, err
	}
	logger.WithField("rec_id", id).Info("user registered")
	return i.Get(id)
}

func (i impl) Login(request usersapimodels.LoginRequest) (usersapimodels.LoginResponse, error) {
	logger := log.WithField("phone", request.Phone)
	user, err := i.store.GetByPhone(request.Phone)
	if err != nil {
		logger.WithError(err).Error("failed to look up user by phone")
		return usersapimodels.LoginResponse{}, err
	}
	if user == nil {
		return usersapimodels.LoginResponse{}, apperrors.NewUnauthorized("wrong phone or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)) != nil {
		logger.Debug("password check failed")
		return usersapimodels.LoginResponse{}, apperrors.NewUnauthorized("wrong phone or password")
	}
	token, err := authutils.GetToken(user.ID, user.Name, user.IsAdmin)
	if err != nil {
		logger.WithError(err).Error("failed to sign JWT")
		return usersapimodels.LoginResponse{}, err
	}
	return usersapimodels.LoginResponse{
		AccessToken: token,
		User:        usersapimodels.UserConvert(*user),
	}, nil
}

func (i impl) Get(id string) (usersapimodels.UserView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return usersapimodels.UserView{}, err
	}
	if rec == nil {
		return usersapimodels.UserView{}, apperrors.NewNotFound("user not found")
	}
	return usersapimodels.UserConvert(*rec), nil
}

func (i impl) List() ([]usersapimodels.UserView, error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list := make([]usersapimodels.UserView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, usersapimodels.UserConvert(rec))
	}
	return list, nil
}

func (i impl) Update(id string, request usersapimodels.UpdateRequest) (usersapimodels.UserView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return usersapimodels.UserView{}, err
	}
	if rec == nil {
		return usersapimodels.UserView{}, apperrors.NewNotFound("user not found")
	}
	updMap := map[string]interface{}{}
	if request.Name != nil {
		updMap["name"] = *request.Name
	}
	if request.Gender != nil {
		updMap["gender"] = *request.Gender
	}
	if request.Address != nil {
		updMap["address"] = *request.Address
	}
	if request.Avatar != nil {
		updMap["avatar"] = *request.Avatar
	}
	if request.IsAdmin != nil {
		updMap["is_admin"] = *request.IsAdmin
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return usersapimodels.UserView{}, err
	}
	log.WithField("rec_id", id).Info("user updated")
	return i.Get(id)
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.NewNotFound("user not found")
	}
	err = i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("user deleted")
	return nil
}

func (i impl) SetAvatar(id, avatarURL string) (usersapimodels.UserView, error) {
	return i.Update(id, usersapimodels.UpdateRequest{Avatar: &avatarURL})
}
