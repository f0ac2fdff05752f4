package contact

import (
	"context"
	"sort"
)

type mockRepo struct {
	leads  map[int]Lead
	nextID int
	err    error
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		leads:  map[int]Lead{},
		nextID: 1,
	}
}

func (m *mockRepo) AddLead(_ context.Context, lead *Lead) (*Lead, error) {
	if m.err != nil {
		return nil, m.err
	}
	lead.ID = m.nextID
	m.nextID++
	m.leads[lead.ID] = *lead
	return lead, nil
}

func (m *mockRepo) LeadsPage(_ context.Context, page, size int) ([]Lead, error) {
	if m.err != nil {
		return nil, m.err
	}
	var all []Lead
	for _, l := range m.leads {
		all = append(all, l)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	offset := (page - 1) * size
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + size
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *mockRepo) CountAll(_ context.Context) (int, error) {
	if m.err != nil {
		return -1, m.err
	}
	return len(m.leads), nil
}

func (m *mockRepo) DeleteLead(_ context.Context, id int) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.leads[id]; !ok {
		return ErrLeadNotFound
	}
	delete(m.leads, id)
	return nil
}
