package settings

import (
	"context"
	"time"
)

type repoMock struct {
	settings map[string]*Setting
	err      error
}

func NewMockSettingsRepo() *repoMock {
	return &repoMock{
		settings: make(map[string]*Setting),
	}
}

func (r *repoMock) Get(_ context.Context, key string) (*Setting, error) {
	if r.err != nil {
		return nil, r.err
	}
	setting, ok := r.settings[key]
	if !ok {
		return nil, ErrSettingNotFound
	}
	return setting, nil
}

func (r *repoMock) GetString(ctx context.Context, key string) (string, error) {
	setting, err := r.Get(ctx, key)
	if err != nil {
		if err == ErrSettingNotFound {
			return "", nil
		}
		return "", err
	}
	return setting.Value, nil
}

func (r *repoMock) Upsert(_ context.Context, key, value string) error {
	if r.err != nil {
		return r.err
	}
	r.settings[key] = &Setting{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	return nil
}

func (r *repoMock) Delete(_ context.Context, key string) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.settings[key]; !ok {
		return ErrSettingNotFound
	}
	delete(r.settings, key)
	return nil
}

func (r *repoMock) All(_ context.Context) ([]Setting, error) {
	if r.err != nil {
		return nil, r.err
	}
	var all []Setting
	for _, setting := range r.settings {
		all = append(all, *setting)
	}
	return all, nil
}
