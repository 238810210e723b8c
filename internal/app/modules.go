package app

import (
	"github.com/vk/puzzlegrid/internal/registry"
	"github.com/vk/puzzlegrid/modules/boarding"
	"github.com/vk/puzzlegrid/modules/customs"
	"github.com/vk/puzzlegrid/modules/diagnostic"
	"github.com/vk/puzzlegrid/modules/dive"
	"github.com/vk/puzzlegrid/modules/handheld"
	"github.com/vk/puzzlegrid/modules/haversacks"
	"github.com/vk/puzzlegrid/modules/hydrothermal"
	"github.com/vk/puzzlegrid/modules/lanternfish"
	"github.com/vk/puzzlegrid/modules/octopus"
	"github.com/vk/puzzlegrid/modules/passports"
	"github.com/vk/puzzlegrid/modules/passwords"
	"github.com/vk/puzzlegrid/modules/reportrepair"
	"github.com/vk/puzzlegrid/modules/sevensegment"
	"github.com/vk/puzzlegrid/modules/smokebasin"
	"github.com/vk/puzzlegrid/modules/sonarsweep"
	"github.com/vk/puzzlegrid/modules/squid"
	"github.com/vk/puzzlegrid/modules/syntaxscoring"
	"github.com/vk/puzzlegrid/modules/toboggan"
	"github.com/vk/puzzlegrid/modules/whales"
)

// coreModules is the definitive list of all puzzles that are compiled into
// the puzzlegrid binary.
var coreModules = []registry.Module{
	// 2020
	&reportrepair.Module{},
	&passwords.Module{},
	&toboggan.Module{},
	&passports.Module{},
	&boarding.Module{},
	&customs.Module{},
	&haversacks.Module{},
	&handheld.Module{},
	// 2021
	&sonarsweep.Module{},
	&dive.Module{},
	&diagnostic.Module{},
	&squid.Module{},
	&hydrothermal.Module{},
	&lanternfish.Module{},
	&whales.Module{},
	&sevensegment.Module{},
	&smokebasin.Module{},
	&syntaxscoring.Module{},
	&octopus.Module{},
}
