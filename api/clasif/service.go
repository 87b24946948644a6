package clasif

import (
	"ClasificadorBancario/internal/config"
	"ClasificadorBancario/internal/keywords"
	"ClasificadorBancario/internal/serviceiface"
)

type ClasifService struct {
	cfg      map[string]interface{}
	keywords *keywords.Store
}

func NewClasifService(cfg map[string]interface{}) serviceiface.Service {
	return &ClasifService{cfg: cfg, keywords: keywords.NewStore()}
}

func (s *ClasifService) Name() string {
	return "clasif"
}

func (s *ClasifService) Start() error {
	port := config.DefaultClasifPort
	if s.cfg != nil {
		if p, ok := s.cfg["port"].(int); ok && p > 0 {
			port = p
		}
	}
	go StartClasifService(port, s.keywords)
	return nil
}

func (s *ClasifService) Stop() error {
	return nil
}
