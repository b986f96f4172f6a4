package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/domain"
)

var ErrPresetNotFound = errors.New("该组还没有保存过生成预设")

// PresetStore 按组保存生成预设，每个组至多一份。
// 读取发生在生成之前，写入发生在用户显式保存时
type PresetStore interface {
	Get(ctx context.Context, groupID int64) (*domain.GenerationPreset, error)
	Put(ctx context.Context, groupID int64, preset *domain.GenerationPreset) error
}

type RedisPresetStore struct {
	client           *redis.Client
	operationTimeout time.Duration
}

func NewRedisPresetStore(client *redis.Client, operationTimeout time.Duration) *RedisPresetStore {
	return &RedisPresetStore{
		client:           client,
		operationTimeout: operationTimeout,
	}
}

func presetKey(groupID int64) string {
	return fmt.Sprintf("generation_preset_group_%d", groupID)
}

func (s *RedisPresetStore) Get(ctx context.Context, groupID int64) (*domain.GenerationPreset, error) {
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	value, err := s.client.Get(ctx, presetKey(groupID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPresetNotFound
		}
		return nil, err
	}

	preset := &domain.GenerationPreset{}
	if err := json.Unmarshal([]byte(value), preset); err != nil {
		return nil, err
	}

	return preset, nil
}

func (s *RedisPresetStore) Put(ctx context.Context, groupID int64, preset *domain.GenerationPreset) error {
	data, err := json.Marshal(preset)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	// 预设长期有效，不设置过期时间
	return s.client.Set(ctx, presetKey(groupID), data, 0).Err()
}
