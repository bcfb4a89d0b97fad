package catalog

import "context"

type Repository interface {
	GetServiceByID(ctx context.Context, id int) (*Service, error)
	GetAllServices(ctx context.Context) ([]Service, error)
	CreateService(ctx context.Context, req CreateServiceRequest) (*Service, error)
}
