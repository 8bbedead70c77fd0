package ccapi

import "context"

// ComfortCloud is the set of operations offered by the Comfort Cloud API
type ComfortCloud interface {
	Login(ctx context.Context, username string, password string) (*LoginResponse, error)
	Groups(ctx context.Context) ([]Group, error)
	GetDevice(ctx context.Context, deviceGUID string) (*Device, error)
	GetDeviceNow(ctx context.Context, deviceGUID string) (*Device, error)
	SetParameters(ctx context.Context, deviceGUID string, parameters Parameters) (*UpdateResponse, error)
	SetDevice(ctx context.Context, device *Device) (*UpdateResponse, error)
}

var _ ComfortCloud = (*Client)(nil)
