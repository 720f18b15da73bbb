package repository

import "growbro/entities"

type GuidesRepository interface {
	CreateDoc(d *entities.GuideDoc) error
	BulkInsertChunks(cs []entities.GuideChunk) error
	ListDocs() ([]entities.GuideDoc, error)
	AllChunks() ([]entities.GuideChunk, error)
	DocsByIDs(ids []uint) (map[uint]entities.GuideDoc, error)
}
