package content

import (
	"context"
	"sort"
)

// mockRepo is a simple in-memory repo used in tests.
type mockRepo struct {
	banners map[int]Banner
	videos  map[int]Video
	images  map[int]GalleryImage
	nextID  int
	err     error
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		banners: map[int]Banner{},
		videos:  map[int]Video{},
		images:  map[int]GalleryImage{},
		nextID:  1,
	}
}

func (m *mockRepo) AddBanner(_ context.Context, banner *Banner) (*Banner, error) {
	if m.err != nil {
		return nil, m.err
	}
	banner.ID = m.nextID
	m.nextID++
	m.banners[banner.ID] = *banner
	return banner, nil
}

func (m *mockRepo) UpdateBanner(_ context.Context, banner *Banner) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.banners[banner.ID]; !ok {
		return ErrBannerNotFound
	}
	m.banners[banner.ID] = *banner
	return nil
}

func (m *mockRepo) DeleteBanner(_ context.Context, id int) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.banners[id]; !ok {
		return ErrBannerNotFound
	}
	delete(m.banners, id)
	return nil
}

func (m *mockRepo) Banners(_ context.Context, activeOnly bool) ([]Banner, error) {
	if m.err != nil {
		return nil, m.err
	}
	var banners []Banner
	for _, b := range m.banners {
		if activeOnly && !b.Active {
			continue
		}
		banners = append(banners, b)
	}
	sort.Slice(banners, func(i, j int) bool {
		return banners[i].Position < banners[j].Position
	})
	return banners, nil
}

func (m *mockRepo) AddVideo(_ context.Context, video *Video) (*Video, error) {
	if m.err != nil {
		return nil, m.err
	}
	video.ID = m.nextID
	m.nextID++
	m.videos[video.ID] = *video
	return video, nil
}

func (m *mockRepo) UpdateVideo(_ context.Context, video *Video) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.videos[video.ID]; !ok {
		return ErrVideoNotFound
	}
	m.videos[video.ID] = *video
	return nil
}

func (m *mockRepo) DeleteVideo(_ context.Context, id int) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.videos[id]; !ok {
		return ErrVideoNotFound
	}
	delete(m.videos, id)
	return nil
}

func (m *mockRepo) Videos(_ context.Context, activeOnly bool) ([]Video, error) {
	if m.err != nil {
		return nil, m.err
	}
	var videos []Video
	for _, v := range m.videos {
		if activeOnly && !v.Active {
			continue
		}
		videos = append(videos, v)
	}
	sort.Slice(videos, func(i, j int) bool {
		return videos[i].Position < videos[j].Position
	})
	return videos, nil
}

func (m *mockRepo) AddGalleryImage(_ context.Context, image *GalleryImage) (*GalleryImage, error) {
	if m.err != nil {
		return nil, m.err
	}
	image.ID = m.nextID
	m.nextID++
	m.images[image.ID] = *image
	return image, nil
}

func (m *mockRepo) UpdateGalleryImage(_ context.Context, image *GalleryImage) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.images[image.ID]; !ok {
		return ErrGalleryImageNotFound
	}
	m.images[image.ID] = *image
	return nil
}

func (m *mockRepo) DeleteGalleryImage(_ context.Context, id int) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.images[id]; !ok {
		return ErrGalleryImageNotFound
	}
	delete(m.images, id)
	return nil
}

func (m *mockRepo) GalleryImages(_ context.Context) ([]GalleryImage, error) {
	if m.err != nil {
		return nil, m.err
	}
	var images []GalleryImage
	for _, img := range m.images {
		images = append(images, img)
	}
	sort.Slice(images, func(i, j int) bool {
		return images[i].Position < images[j].Position
	})
	return images, nil
}
