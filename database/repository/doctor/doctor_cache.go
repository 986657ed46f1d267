package doctorRepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"medibook/models"
	"medibook/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CachedDoctorRepo is a read-through Redis cache over GetByID. Entries expire
// after ttl and are replaced on Create. Cache failures fall back to the
// underlying repository.
type CachedDoctorRepo struct {
	next   DoctorRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedDoctorRepo(next DoctorRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedDoctorRepo {
	if ttl <= 0 {
		ttl = utils.DefaultDoctorCacheTTL
	}
	return &CachedDoctorRepo{next: next, client: client, ttl: ttl, logger: logger}
}

func cacheKey(id string) string {
	return utils.DoctorCachePrefix + id
}

func (r *CachedDoctorRepo) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	raw, err := r.client.Get(ctx, cacheKey(id)).Bytes()
	if err == nil {
		var doctor models.Doctor
		if jsonErr := json.Unmarshal(raw, &doctor); jsonErr == nil {
			return &doctor, nil
		}
		r.logger.Warn("discarding undecodable cached doctor", zap.String("doctorId", id))
	} else if !errors.Is(err, redis.Nil) {
		r.logger.Warn("doctor cache read failed", zap.String("doctorId", id), zap.Error(err))
	}

	doctor, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(ctx, doctor)
	return doctor, nil
}

func (r *CachedDoctorRepo) Search(ctx context.Context, query, specialty string) ([]models.Doctor, error) {
	return r.next.Search(ctx, query, specialty)
}

func (r *CachedDoctorRepo) Create(ctx context.Context, doctor *models.Doctor) error {
	if err := r.next.Create(ctx, doctor); err != nil {
		return err
	}
	r.store(ctx, doctor)
	return nil
}

func (r *CachedDoctorRepo) store(ctx context.Context, doctor *models.Doctor) {
	data, err := json.Marshal(doctor)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, cacheKey(doctor.ID), data, r.ttl).Err(); err != nil {
		r.logger.Warn("doctor cache write failed", zap.String("doctorId", doctor.ID), zap.Error(err))
	}
}
