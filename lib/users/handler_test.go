package usershandler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"store-ops-backend/lib/users/store"
	usersapimodels "store-ops-backend/models/api/users"
	"store-ops-backend/models/apperrors"
	dbmodels "store-ops-backend/models/db"
)

type fakeUserStore struct {
	recs   []dbmodels.StaffUser
	nextID int
}

func (f *fakeUserStore) Create(rec dbmodels.StaffUser) (string, error) {
	for _, existing := range f.recs {
		if existing.Phone == rec.Phone {
			return "", store.ErrPhoneTaken
		}
	}
	f.nextID++
	rec.ID = fmt.Sprintf("user-%d", f.nextID)
	f.recs = append(f.recs, rec)
	return rec.ID, nil
}

func (f *fakeUserStore) GetByID(id string) (*dbmodels.StaffUser, error) {
	for idx := range f.recs {
		if f.recs[idx].ID == id {
			rec := f.recs[idx]
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) GetByPhone(phone string) (*dbmodels.StaffUser, error) {
	for idx := range f.recs {
		if f.recs[idx].Phone == phone {
			rec := f.recs[idx]
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) List() ([]dbmodels.StaffUser, error) { return f.recs, nil }

func (f *fakeUserStore) Update(id string, updMap map[string]interface{}) error {
	for idx := range f.recs {
		if f.recs[idx].ID != id {
			continue
		}
		if v, ok := updMap["name"]; ok {
			f.recs[idx].Name = v.(string)
		}
		if v, ok := updMap["avatar"]; ok {
			f.recs[idx].Avatar = v.(string)
		}
		if v, ok := updMap["is_admin"]; ok {
			f.recs[idx].IsAdmin = v.(bool)
		}
	}
	return nil
}

func (f *fakeUserStore) Delete(id string) error {
	for idx := range f.recs {
		if f.recs[idx].ID == id {
			f.recs = append(f.recs[:idx], f.recs[idx+1:]...)
			return nil
		}
	}
	return nil
}

func TestRegister(t *testing.T) {
	t.Run(`stores a bcrypt hash, never the raw password`, func(t *testing.T) {
		userStore := &fakeUserStore{}
		handler := impl{store: userStore}
		view, err := handler.Register(usersapimodels.RegisterRequest{
			Name:     "Li Wei",
			Phone:    "13800000001",
			Password: "secret-pass",
		})
		require.Nil(t, err)
		require.Equal(t, "Li Wei", view.Name)

		stored := userStore.recs[0]
		require.NotEqual(t, "secret-pass", stored.Password)
		require.Nil(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret-pass")))
	})

	t.Run(`duplicate phone conflicts`, func(t *testing.T) {
		userStore := &fakeUserStore{}
		handler := impl{store: userStore}
		_, err := handler.Register(usersapimodels.RegisterRequest{Name: "A", Phone: "13800000001", Password: "secret-pass"})
		require.Nil(t, err)
		_, err = handler.Register(usersapimodels.RegisterRequest{Name: "B", Phone: "13800000001", Password: "other-pass"})
		require.NotNil(t, err)
		require.True(t, apperrors.IsStatus(err, 409))
	})
}

func TestLogin(t *testing.T) {
	t.Run(`wrong password and unknown phone answer alike`, func(t *testing.T) {
		userStore := &fakeUserStore{}
		handler := impl{store: userStore}
		_, err := handler.Register(usersapimodels.RegisterRequest{Name: "A", Phone: "13800000001", Password: "secret-pass"})
		require.Nil(t, err)

		_, badPass := handler.Login(usersapimodels.LoginRequest{Phone: "13800000001", Password: "wrong"})
		_, badPhone := handler.Login(usersapimodels.LoginRequest{Phone: "13800000002", Password: "secret-pass"})
		require.True(t, apperrors.IsStatus(badPass, 401))
		require.True(t, apperrors.IsStatus(badPhone, 401))
		require.Equal(t, badPass.Error(), badPhone.Error())
	})
}

func TestUpdate(t *testing.T) {
	t.Run(`nil fields stay unchanged`, func(t *testing.T) {
		userStore := &fakeUserStore{}
		handler := impl{store: userStore}
		view, err := handler.Register(usersapimodels.RegisterRequest{Name: "A", Phone: "13800000001", Password: "secret-pass"})
		require.Nil(t, err)

		name := "Renamed"
		updated, err := handler.Update(view.ID, usersapimodels.UpdateRequest{Name: &name})
		require.Nil(t, err)
		require.Equal(t, "Renamed", updated.Name)
		require.Equal(t, "13800000001", updated.Phone)
	})

	t.Run(`unknown user`, func(t *testing.T) {
		handler := impl{store: &fakeUserStore{}}
		_, err := handler.Update("missing", usersapimodels.UpdateRequest{})
		require.True(t, apperrors.IsStatus(err, 404))
	})
}
