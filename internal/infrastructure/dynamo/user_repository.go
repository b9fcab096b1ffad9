package dynamo

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/Dill1027/DT-Price-List/internal/domain"
	"github.com/Dill1027/DT-Price-List/internal/domain/entity"
	"github.com/Dill1027/DT-Price-List/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación DynamoDB de UserRepository. El username queda
// reservado aunque el usuario se desactive.
type UserRepo struct {
	s *Store
}

func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	it := toUserItem(user)
	item, err := attributevalue.MarshalMap(it)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	err = r.s.writeGuarded(ctx, guardedWrite{
		table: r.s.tables.Users, id: user.ID, item: item, create: true,
		newGuard: usernameGuard(it.UsernameKey),
	})
	if errors.Is(err, errGuardTaken) {
		return domain.ErrUsernameTaken
	}
	if errors.Is(err, errItemCondition) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *UserRepo) get(ctx context.Context, id string) (*userItem, error) {
	raw, err := r.s.getItem(ctx, r.s.tables.Users, id)
	if err != nil || raw == nil {
		return nil, err
	}
	var it userItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return nil, fmt.Errorf("unmarshal user: %w", err)
	}
	if it.Kind != kindUser {
		return nil, nil
	}
	return &it, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	it, err := r.get(ctx, id)
	if err != nil || it == nil {
		return nil, err
	}
	return it.toEntity(), nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	id, err := r.s.resolveGuard(ctx, r.s.tables.Users, usernameGuard(entity.Fold(username)))
	if err != nil || id == "" {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	old, err := r.get(ctx, user.ID)
	if err != nil {
		return err
	}
	if old == nil {
		return domain.ErrUserNotFound
	}
	it := toUserItem(user)
	item, err := attributevalue.MarshalMap(it)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	err = r.s.writeGuarded(ctx, guardedWrite{
		table: r.s.tables.Users, id: user.ID, item: item,
		oldGuard: usernameGuard(old.UsernameKey), newGuard: usernameGuard(it.UsernameKey),
	})
	switch {
	case errors.Is(err, errItemCondition):
		return domain.ErrUserNotFound
	case errors.Is(err, errGuardTaken):
		return domain.ErrUsernameTaken
	}
	return err
}

// List devuelve todos los usuarios ordenados por username.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	var out []*entity.User
	err := r.s.scanKind(ctx, r.s.tables.Users, kindUser, func(raw map[string]types.AttributeValue) error {
		var it userItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return fmt.Errorf("unmarshal user: %w", err)
		}
		out = append(out, it.toEntity())
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return entity.Fold(out[i].Username) < entity.Fold(out[j].Username) })
	return out, nil
}
