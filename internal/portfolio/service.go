package portfolio

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/kishordev/portfolio-api/internal/store"
)

const (
	collectionAbout           = "about"
	collectionEducation       = "education"
	collectionContact         = "contact"
	collectionCertificates    = "certificates"
	collectionProgLanguages   = "programming_languages"
	collectionSpokenLanguages = "spoken_languages"
	collectionTechStacks      = "tech_stacks"

	// contactID pins the singleton contact record.
	contactID = "default"
)

// Service exposes typed CRUD over the document store.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

func listDocs[T any](ctx context.Context, st store.Store, collection string) ([]T, error) {
	raws, err := st.List(ctx, collection)
	if err != nil {
		return nil, err
	}

	docs := make([]T, 0, len(raws))
	for _, raw := range raws {
		var doc T
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode %s document: %w", collection, err)
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

func getDoc[T any](ctx context.Context, st store.Store, collection, id string) (T, error) {
	var doc T
	raw, err := st.Get(ctx, collection, id)
	if err != nil {
		return doc, err
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return doc, fmt.Errorf("decode %s document: %w", collection, err)
	}
	return doc, nil
}

func insertDoc[T any](ctx context.Context, st store.Store, collection, id string, doc T) (T, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return doc, fmt.Errorf("encode %s document: %w", collection, err)
	}
	if err := st.Insert(ctx, collection, id, data); err != nil {
		return doc, err
	}
	return doc, nil
}

func updateDoc[T any](ctx context.Context, st store.Store, collection, id string, doc T) (T, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return doc, fmt.Errorf("encode %s document: %w", collection, err)
	}
	if err := st.Update(ctx, collection, id, data); err != nil {
		return doc, err
	}
	return doc, nil
}

func (s *Service) ListAbout(ctx context.Context) ([]About, error) {
	return listDocs[About](ctx, s.store, collectionAbout)
}

func (s *Service) GetAbout(ctx context.Context, id string) (About, error) {
	return getDoc[About](ctx, s.store, collectionAbout, id)
}

// CreateAbout stores a biography under a caller-chosen id.
func (s *Service) CreateAbout(ctx context.Context, id string, a About) (About, error) {
	a.ID = id
	return insertDoc(ctx, s.store, collectionAbout, id, a)
}

func (s *Service) UpdateAbout(ctx context.Context, id string, a About) (About, error) {
	a.ID = id
	return updateDoc(ctx, s.store, collectionAbout, id, a)
}

func (s *Service) DeleteAbout(ctx context.Context, id string) error {
	return s.store.Delete(ctx, collectionAbout, id)
}

func (s *Service) ListEducation(ctx context.Context) ([]Education, error) {
	return listDocs[Education](ctx, s.store, collectionEducation)
}

func (s *Service) GetEducation(ctx context.Context, id string) (Education, error) {
	return getDoc[Education](ctx, s.store, collectionEducation, id)
}

func (s *Service) CreateEducation(ctx context.Context, e Education) (Education, error) {
	e.ID = uuid.New().String()
	return insertDoc(ctx, s.store, collectionEducation, e.ID, e)
}

func (s *Service) UpdateEducation(ctx context.Context, id string, e Education) (Education, error) {
	e.ID = id
	return updateDoc(ctx, s.store, collectionEducation, id, e)
}

func (s *Service) DeleteEducation(ctx context.Context, id string) error {
	return s.store.Delete(ctx, collectionEducation, id)
}

func (s *Service) GetContact(ctx context.Context) (Contact, error) {
	return getDoc[Contact](ctx, s.store, collectionContact, contactID)
}

func (s *Service) CreateContact(ctx context.Context, c Contact) (Contact, error) {
	return insertDoc(ctx, s.store, collectionContact, contactID, c)
}

func (s *Service) UpdateContact(ctx context.Context, c Contact) (Contact, error) {
	return updateDoc(ctx, s.store, collectionContact, contactID, c)
}

func (s *Service) DeleteContact(ctx context.Context) error {
	return s.store.Delete(ctx, collectionContact, contactID)
}

func (s *Service) ListCertificates(ctx context.Context) ([]Certificate, error) {
	return listDocs[Certificate](ctx, s.store, collectionCertificates)
}

func (s *Service) GetCertificate(ctx context.Context, id string) (Certificate, error) {
	return getDoc[Certificate](ctx, s.store, collectionCertificates, id)
}

func (s *Service) CreateCertificate(ctx context.Context, c Certificate) (Certificate, error) {
	c.ID = uuid.New().String()
	return insertDoc(ctx, s.store, collectionCertificates, c.ID, c)
}

func (s *Service) UpdateCertificate(ctx context.Context, id string, c Certificate) (Certificate, error) {
	c.ID = id
	return updateDoc(ctx, s.store, collectionCertificates, id, c)
}

func (s *Service) DeleteCertificate(ctx context.Context, id string) error {
	return s.store.Delete(ctx, collectionCertificates, id)
}

func (s *Service) ListProgrammingLanguages(ctx context.Context) ([]ProgrammingLanguage, error) {
	return listDocs[ProgrammingLanguage](ctx, s.store, collectionProgLanguages)
}

func (s *Service) CreateProgrammingLanguage(ctx context.Context, l ProgrammingLanguage) (ProgrammingLanguage, error) {
	l.ID = uuid.New().String()
	return insertDoc(ctx, s.store, collectionProgLanguages, l.ID, l)
}

func (s *Service) UpdateProgrammingLanguage(ctx context.Context, id string, l ProgrammingLanguage) (ProgrammingLanguage, error) {
	l.ID = id
	return updateDoc(ctx, s.store, collectionProgLanguages, id, l)
}

func (s *Service) DeleteProgrammingLanguage(ctx context.Context, id string) error {
	return s.store.Delete(ctx, collectionProgLanguages, id)
}

func (s *Service) ListSpokenLanguages(ctx context.Context) ([]SpokenLanguage, error) {
	return listDocs[SpokenLanguage](ctx, s.store, collectionSpokenLanguages)
}

func (s *Service) CreateSpokenLanguage(ctx context.Context, l SpokenLanguage) (SpokenLanguage, error) {
	l.ID = uuid.New().String()
	return insertDoc(ctx, s.store, collectionSpokenLanguages, l.ID, l)
}

func (s *Service) UpdateSpokenLanguage(ctx context.Context, id string, l SpokenLanguage) (SpokenLanguage, error) {
	l.ID = id
	return updateDoc(ctx, s.store, collectionSpokenLanguages, id, l)
}

func (s *Service) DeleteSpokenLanguage(ctx context.Context, id string) error {
	return s.store.Delete(ctx, collectionSpokenLanguages, id)
}

func (s *Service) ListTechStacks(ctx context.Context) ([]TechStack, error) {
	return listDocs[TechStack](ctx, s.store, collectionTechStacks)
}

func (s *Service) CreateTechStack(ctx context.Context, ts TechStack) (TechStack, error) {
	ts.ID = uuid.New().String()
	return insertDoc(ctx, s.store, collectionTechStacks, ts.ID, ts)
}

func (s *Service) UpdateTechStack(ctx context.Context, id string, ts TechStack) (TechStack, error) {
	ts.ID = id
	return updateDoc(ctx, s.store, collectionTechStacks, id, ts)
}

func (s *Service) DeleteTechStack(ctx context.Context, id string) error {
	return s.store.Delete(ctx, collectionTechStacks, id)
}
