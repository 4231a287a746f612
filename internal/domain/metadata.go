package domain

import "time"

// Metadata agrupa datos de origen y ciclo de vida del cliente. Tags es un
// conjunto ordenado sin duplicados, preservando el orden de inserción.
type Metadata struct {
	Origem          string
	Canal           string
	Tags            []string
	Notas           string
	DataDesativacao *time.Time
}

func NewMetadata() *Metadata {
	return &Metadata{Tags: []string{}}
}

func (m *Metadata) AdicionarTag(tag string) {
	if m.Tags == nil {
		m.Tags = []string{}
	}
	if m.HasTag(tag) {
		return
	}
	m.Tags = append(m.Tags, tag)
}

func (m *Metadata) RemoverTag(tag string) {
	for i, t := range m.Tags {
		if t == tag {
			m.Tags = append(m.Tags[:i], m.Tags[i+1:]...)
			return
		}
	}
}

func (m *Metadata) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (m *Metadata) IsDesativado() bool {
	return m.DataDesativacao != nil
}

func (m *Metadata) LimparDataDesativacao() {
	m.DataDesativacao = nil
}
