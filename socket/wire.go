package socket

import (
	"Cookhub/service"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewHub,
	wire.Bind(new(service.NoticePusher), new(*Hub)),
)
