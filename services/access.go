package services

import (
	"github.com/abdul-09/slooze-restaurant/entity"
	"github.com/abdul-09/slooze-restaurant/pkg/apperr"
)

// Principal is the authenticated caller as the identity layer reports it.
// A nil *Principal means unauthenticated.
type Principal struct {
	ID     uint
	Role   string
	Region string
}

type Action string

const (
	ActionCatalogRead   Action = "catalog.read"
	ActionCatalogWrite  Action = "catalog.write"
	ActionUserRead      Action = "user.read"
	ActionUserWrite     Action = "user.write"
	ActionCartMutate    Action = "cart.mutate"
	ActionCheckout      Action = "order.checkout"
	ActionOrderRead     Action = "order.read"
	ActionStatusUpdate  Action = "order.update_status"
	ActionOrderCancel   Action = "order.cancel"
	ActionPaymentUpdate Action = "order.update_payment"
	ActionOrderDelete   Action = "order.delete"
)

// Resource describes the target of an action. Region is empty for resources
// that are not region-scoped; OwnerID is zero when ownership does not apply;
// Public marks catalog reads that need no authentication.
type Resource struct {
	Kind    string
	Region  string
	OwnerID uint
	Public  bool
}

type Decision struct {
	Allow  bool
	Reason string
}

func allow() Decision             { return Decision{Allow: true} }
func deny(reason string) Decision { return Decision{Reason: reason} }

// Authorize is the single permission gate: a pure function of the principal,
// the action and the resource descriptor. Every mutating operation consults
// it; no other permission state exists.
func Authorize(p *Principal, action Action, res Resource) Decision {
	if p == nil {
		if action == ActionCatalogRead && res.Public {
			return allow()
		}
		return deny("authentication required")
	}

	switch action {
	case ActionCatalogRead:
		if !regionAllows(p, res.Region) {
			return deny("outside caller region")
		}
		return allow()

	case ActionCatalogWrite:
		if p.Role != entity.RoleAdmin {
			return deny("catalog writes are admin only")
		}
		return allow()

	case ActionUserRead:
		switch p.Role {
		case entity.RoleAdmin:
			return allow()
		case entity.RoleManager:
			if !regionAllows(p, res.Region) {
				return deny("outside caller region")
			}
			return allow()
		}
		if res.OwnerID != 0 && res.OwnerID == p.ID {
			return allow()
		}
		return deny("user records are admin/manager only")

	case ActionUserWrite:
		if p.Role != entity.RoleAdmin {
			return deny("user writes are admin only")
		}
		return allow()

	case ActionCartMutate:
		if res.OwnerID != p.ID {
			return deny("not the cart owner")
		}
		return allow()

	case ActionCheckout:
		if p.Role != entity.RoleAdmin && p.Role != entity.RoleManager {
			return deny("checkout is admin/manager only")
		}
		if res.OwnerID != 0 && res.OwnerID != p.ID {
			return deny("not the cart owner")
		}
		return allow()

	case ActionOrderRead:
		if res.OwnerID != 0 && res.OwnerID == p.ID {
			return allow()
		}
		switch p.Role {
		case entity.RoleAdmin:
			return allow()
		case entity.RoleManager:
			if !regionAllows(p, res.Region) {
				return deny("outside caller region")
			}
			return allow()
		}
		return deny("not the order owner")

	case ActionStatusUpdate, ActionOrderCancel:
		if p.Role != entity.RoleAdmin && p.Role != entity.RoleManager {
			return deny("order lifecycle is admin/manager only")
		}
		if !regionAllows(p, res.Region) {
			return deny("outside caller region")
		}
		return allow()

	case ActionPaymentUpdate:
		if p.Role != entity.RoleAdmin {
			return deny("payment method changes are admin only")
		}
		return allow()

	case ActionOrderDelete:
		if p.Role != entity.RoleAdmin {
			return deny("order deletion is admin only")
		}
		return allow()
	}

	return deny("unknown action")
}

// Require is Authorize folded into the error taxonomy.
func Require(p *Principal, action Action, res Resource) error {
	if d := Authorize(p, action, res); !d.Allow {
		return apperr.New(apperr.PermissionDenied, d.Reason)
	}
	return nil
}

// regionAllows applies the region rule: admins and global-region principals
// act anywhere; everyone else only within their own region. Resources without
// a region are unrestricted.
func regionAllows(p *Principal, resRegion string) bool {
	if resRegion == "" {
		return true
	}
	if p.Role == entity.RoleAdmin || p.Region == entity.RegionGlobal {
		return true
	}
	return p.Region == resRegion
}
