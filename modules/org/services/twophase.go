package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/orgboard-io/orgboard/modules/org/gateway"
)

// composite describes an entity persisted as a parent row plus a set of owned
// child rows that are always rewritten together. Creates write the parent
// first, then the children; updates rewrite the parent, purge the old
// children and insert the replacement set. Once the parent write has landed
// remotely a child-side failure no longer fails the operation: the parent is
// dispatched with whatever children actually exist and the user is told what
// went missing. The one exception is a failed purge on update, where the old
// child rows survive remotely with unknown content, so nothing is dispatched
// at all.
type composite[P, C any] struct {
	parentCollection string
	childCollection  string
	childColumn      string

	parentID func(P) string

	noun      string // notification subject, e.g. "Team"
	childNoun string // e.g. "members"
}

func (cp composite[P, C]) lower() string {
	return strings.ToLower(cp.noun)
}

func (cp composite[P, C]) create(
	ctx context.Context,
	c *core,
	parent P,
	rows func(parentID string) []C,
	dispatch func(parent P, children []C),
) (P, error) {
	var created P
	err := c.mutate("create "+cp.lower(), func() error {
		var err error
		created, err = gateway.Create(ctx, c.gw, cp.parentCollection, parent)
		if err != nil {
			return errors.Wrapf(err, "failed to create %s", cp.lower())
		}

		children := rows(cp.parentID(created))
		var inserted []C
		if len(children) > 0 {
			inserted, err = gateway.CreateAll(ctx, c.gw, cp.childCollection, children)
			if err != nil {
				dispatch(created, nil)
				c.fail(fmt.Sprintf("%s created, but failed to add %s: %s", cp.noun, cp.childNoun, err))
				return nil
			}
		}

		dispatch(created, inserted)
		c.success(cp.noun + " created")
		return nil
	})
	return created, err
}

func (cp composite[P, C]) update(
	ctx context.Context,
	c *core,
	id string,
	parent P,
	rows func(parentID string) []C,
	dispatch func(parent P, children []C),
) (P, error) {
	var updated P
	err := c.mutate("update "+cp.lower(), func() error {
		var err error
		updated, err = gateway.Update(ctx, c.gw, cp.parentCollection, id, parent)
		if err != nil {
			return errors.Wrapf(err, "failed to update %s", cp.lower())
		}

		if err := c.gw.DeleteWhere(ctx, cp.childCollection, cp.childColumn, id); err != nil {
			c.fail(fmt.Sprintf("%s updated, but failed to update %s: %s", cp.noun, cp.childNoun, err))
			return nil
		}

		children := rows(id)
		var inserted []C
		if len(children) > 0 {
			inserted, err = gateway.CreateAll(ctx, c.gw, cp.childCollection, children)
			if err != nil {
				dispatch(updated, nil)
				c.fail(fmt.Sprintf("%s updated, but failed to add %s: %s", cp.noun, cp.childNoun, err))
				return nil
			}
		}

		dispatch(updated, inserted)
		c.success(cp.noun + " updated")
		return nil
	})
	return updated, err
}

// delete issues a single remote delete; the child rows go with it through the
// store's cascade, and the dispatched transition cascades the same way.
func (cp composite[P, C]) delete(ctx context.Context, c *core, id string, dispatch func(id string)) error {
	return c.mutate("delete "+cp.lower(), func() error {
		if err := c.gw.DeleteOne(ctx, cp.parentCollection, id); err != nil {
			return errors.Wrapf(err, "failed to delete %s", cp.lower())
		}
		dispatch(id)
		c.success(cp.noun + " deleted")
		return nil
	})
}
