package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/lojatricolor/storefront/internal/models"
	"github.com/lojatricolor/storefront/internal/store"
)

const usersPath = "users"

type UserRepository interface {
	GetAll(ctx context.Context) ([]models.UserData, error)
	Get(ctx context.Context, uid string) (*models.UserData, bool, error)
	Save(ctx context.Context, user *models.UserData) error
	UpdateAccess(ctx context.Context, uid string, access bool) error
	Delete(ctx context.Context, uid string) error
}

type userRepository struct {
	kv store.Store
}

func NewUserRepo(kv store.Store) UserRepository {
	return &userRepository{kv: kv}
}

func (r *userRepository) GetAll(ctx context.Context) ([]models.UserData, error) {

	docs, err := r.kv.List(ctx, usersPath)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	users := make([]models.UserData, 0, len(docs))

	for uid, raw := range docs {

		var user models.UserData

		if err := json.Unmarshal(raw, &user); err != nil {
			return nil, fmt.Errorf("decoding user %s: %w", uid, err)
		}

		user.UID = uid
		users = append(users, user)
	}

	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })

	return users, nil
}

func (r *userRepository) Get(ctx context.Context, uid string) (*models.UserData, bool, error) {

	user := &models.UserData{}

	found, err := r.kv.Get(ctx, usersPath+"/"+uid, user)
	if err != nil {
		return nil, false, fmt.Errorf("reading user %s: %w", uid, err)
	}

	if !found {
		return nil, false, nil
	}

	user.UID = uid

	return user, true, nil
}

func (r *userRepository) Save(ctx context.Context, user *models.UserData) error {

	if err := r.kv.Set(ctx, usersPath+"/"+user.UID, user); err != nil {
		return fmt.Errorf("saving user %s: %w", user.UID, err)
	}

	return nil
}

func (r *userRepository) UpdateAccess(ctx context.Context, uid string, access bool) error {

	user, found, err := r.Get(ctx, uid)
	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("user %s: %w", uid, ErrNotFound)
	}

	user.Access = access

	return r.Save(ctx, user)
}

// Delete removes only the UserData record. The identity-provider account
// survives; without a UserData record the principal fails the access gate
// anyway.
func (r *userRepository) Delete(ctx context.Context, uid string) error {

	if err := r.kv.Delete(ctx, usersPath+"/"+uid); err != nil {
		return fmt.Errorf("deleting user %s: %w", uid, err)
	}

	return nil
}
