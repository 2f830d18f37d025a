package module

import (
	"github.com/addchain/collator/module/irrecoverable"
)

// Spawner runs named background tasks on behalf of a caller that must not
// block. Tasks receive the context of the owning component and may throw
// irrecoverable errors on it.
type Spawner interface {
	Spawn(name string, task func(ctx irrecoverable.SignalerContext))
}
