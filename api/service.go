package api

import (
	"ClasificadorBancario/internal/config"
	"ClasificadorBancario/internal/serviceiface"
)

type GatewayService struct {
	cfg map[string]interface{}
}

func NewGatewayService(cfg map[string]interface{}) serviceiface.Service {
	return &GatewayService{cfg: cfg}
}

func (s *GatewayService) Name() string {
	return "gateway"
}

func (s *GatewayService) Start() error {
	port := config.DefaultGatewayPort
	clasifPort := config.DefaultClasifPort
	if s.cfg != nil {
		if p, ok := s.cfg["port"].(int); ok && p > 0 {
			port = p
		}
		if p, ok := s.cfg["clasif_port"].(int); ok && p > 0 {
			clasifPort = p
		}
	}
	go StartGateway(port, clasifPort)
	return nil
}

func (s *GatewayService) Stop() error {
	return nil
}
