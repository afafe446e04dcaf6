package store

import (
	"context"

	"github.com/Akash8377/futuresoulmate-admin/client"
)

// NoPayload is the payload type of read-only resources.
type NoPayload struct{}

// Resource binds one collection slice to its backend operations. A nil
// operation is unsupported and resolves to a validation error locally.
type Resource[T client.Entity, P any] struct {
	name     string // slice name and metrics label, e.g. "plans"
	singular string // used in fallback messages, e.g. "plan"
	slice    func(*State) *Collection[T]

	list    func(ctx context.Context, a API) ([]T, error)
	listFor func(ctx context.Context, a API, owner client.ID) ([]T, error)
	get     func(ctx context.Context, a API, id client.ID) (*T, error)
	create  func(ctx context.Context, a API, p P) (*T, error)
	update  func(ctx context.Context, a API, id client.ID, p P) (*T, error)
	status  func(ctx context.Context, a API, id client.ID, status string) (*T, error)
	remove  func(ctx context.Context, a API, id client.ID) error
}

// Name returns the slice name.
func (r *Resource[T, P]) Name() string { return r.name }

// Of returns the resource's collection inside st.
func (r *Resource[T, P]) Of(st State) Collection[T] { return *r.slice(&st) }

func (r *Resource[T, P]) successKey() string { return r.name + "/success" }

// set returns st with the collection replaced by fn(current).
func (r *Resource[T, P]) set(st State, fn func(Collection[T]) Collection[T]) State {
	c := r.slice(&st)
	*c = fn(*c)
	return st
}

// unsupported rejects an operation the backend does not offer.
func (r *Resource[T, P]) unsupported(op string) Command {
	return reducer{name: r.name + "/" + op, fn: func(st State) (State, []Effect) {
		err := client.NewValidationError(r.name+"."+op, op+" is not supported for "+r.name)
		return r.set(st, func(c Collection[T]) Collection[T] { return c.failed(err) }), []Effect{reportEffect{err: err}}
	}}
}

// rejectLocal stores a pre-network failure without touching Loading.
func (r *Resource[T, P]) rejectLocal(op string, err *client.Error) Command {
	return reducer{name: r.name + "/" + op, fn: func(st State) (State, []Effect) {
		st = r.set(st, func(c Collection[T]) Collection[T] {
			c.Err = err
			return c
		})
		return st, []Effect{reportEffect{err: err}}
	}}
}

// ------------------------------
// Commands
// ------------------------------

// FetchAll replaces Items with the server's collection.
func (r *Resource[T, P]) FetchAll() Command {
	if r.list == nil {
		return r.unsupported("fetchAll")
	}
	return r.fetchList("fetchAll", func(ctx context.Context, a API) ([]T, error) { return r.list(ctx, a) })
}

// FetchAllForUser replaces Items with the collection owned by one member.
func (r *Resource[T, P]) FetchAllForUser(owner client.ID) Command {
	if r.listFor == nil {
		return r.unsupported("fetchAllForUser")
	}
	return r.fetchList("fetchAllForUser", func(ctx context.Context, a API) ([]T, error) { return r.listFor(ctx, a, owner) })
}

func (r *Resource[T, P]) fetchList(op string, list func(context.Context, API) ([]T, error)) Command {
	name := r.name + "/" + op
	fallback := failMessage("fetch", r.name)
	return reducer{name: name, fn: func(st State) (State, []Effect) {
		st = r.set(st, func(c Collection[T]) Collection[T] { return c.pending(false) })
		return st, []Effect{callEffect{
			name:      name,
			retryable: true,
			do: func(ctx context.Context, e *env) (Command, error) {
				items, err := list(ctx, e.api)
				if err != nil {
					return nil, err
				}
				return reducer{name: name + "/fulfilled", fn: func(st State) (State, []Effect) {
					return r.set(st, func(c Collection[T]) Collection[T] { return c.replaced(items) }), nil
				}}, nil
			},
			fail: func(err error) Command {
				ce := normalize(r.name+"."+op, err, fallback)
				if ce.Kind == client.KindShape {
					// Unexpected envelope: show an empty collection, keep Err as it was.
					return reducer{name: name + "/anomaly", fn: func(st State) (State, []Effect) {
						return r.set(st, func(c Collection[T]) Collection[T] {
							c.Items = []T{}
							c.Loading = false
							return c
						}), nil
					}}
				}
				return reducer{name: name + "/rejected", fn: func(st State) (State, []Effect) {
					// stale-but-available: Items stay as they were
					return r.set(st, func(c Collection[T]) Collection[T] { return c.failed(ce) }), nil
				}}
			},
		}}
	}}
}

// FetchByID sets Current to one entity. Items are not touched.
func (r *Resource[T, P]) FetchByID(id client.ID) Command {
	if r.get == nil {
		return r.unsupported("fetchById")
	}
	const op = "fetchById"
	name := r.name + "/" + op
	fallback := failMessage("fetch", r.singular)
	return reducer{name: name, fn: func(st State) (State, []Effect) {
		st = r.set(st, func(c Collection[T]) Collection[T] { return c.pending(false) })
		return st, []Effect{callEffect{
			name:      name,
			retryable: true,
			do: func(ctx context.Context, e *env) (Command, error) {
				item, err := r.get(ctx, e.api, id)
				if err != nil {
					return nil, err
				}
				return reducer{name: name + "/fulfilled", fn: func(st State) (State, []Effect) {
					return r.set(st, func(c Collection[T]) Collection[T] { return c.withCurrent(item) }), nil
				}}, nil
			},
			fail: r.rejected(name, op, fallback),
		}}
	}}
}

// Create posts p and prepends the stored entity.
func (r *Resource[T, P]) Create(p P) Command {
	if r.create == nil {
		return r.unsupported("create")
	}
	const op = "create"
	if err := client.Validate(p); err != nil {
		return r.rejectLocal(op, client.NewValidationError(r.name+"."+op, err.Error()))
	}
	return r.mutation(op, failMessage(op, r.singular), func(ctx context.Context, a API) (func(Collection[T]) Collection[T], error) {
		item, err := r.create(ctx, a, p)
		if err != nil {
			return nil, err
		}
		return func(c Collection[T]) Collection[T] { return c.prepended(*item) }, nil
	})
}

// Update puts p and replaces the matching entity in place.
func (r *Resource[T, P]) Update(id client.ID, p P) Command {
	if r.update == nil {
		return r.unsupported("update")
	}
	const op = "update"
	if err := client.Validate(p); err != nil {
		return r.rejectLocal(op, client.NewValidationError(r.name+"."+op, err.Error()))
	}
	return r.mutation(op, failMessage(op, r.singular), func(ctx context.Context, a API) (func(Collection[T]) Collection[T], error) {
		item, err := r.update(ctx, a, id, p)
		if err != nil {
			return nil, err
		}
		return func(c Collection[T]) Collection[T] { return c.patched(*item).succeeded() }, nil
	})
}

// Delete removes the entity on the server, then from Items.
func (r *Resource[T, P]) Delete(id client.ID) Command {
	if r.remove == nil {
		return r.unsupported("delete")
	}
	const op = "delete"
	return r.mutation(op, failMessage(op, r.singular), func(ctx context.Context, a API) (func(Collection[T]) Collection[T], error) {
		if err := r.remove(ctx, a, id); err != nil {
			return nil, err
		}
		return func(c Collection[T]) Collection[T] { return c.removed(id) }, nil
	})
}

// mutation wires the shared create/update/delete lifecycle: pending clears
// Success and cancels its timer; success schedules the timer again.
func (r *Resource[T, P]) mutation(op, fallback string, do func(context.Context, API) (func(Collection[T]) Collection[T], error)) Command {
	name := r.name + "/" + op
	return reducer{name: name, fn: func(st State) (State, []Effect) {
		st = r.set(st, func(c Collection[T]) Collection[T] { return c.pending(true) })
		return st, []Effect{
			cancelEffect{key: r.successKey()},
			callEffect{
				name: name,
				do: func(ctx context.Context, e *env) (Command, error) {
					patch, err := do(ctx, e.api)
					if err != nil {
						return nil, err
					}
					return reducer{name: name + "/fulfilled", fn: func(st State) (State, []Effect) {
						return r.set(st, patch), []Effect{afterEffect{key: r.successKey(), cmd: r.ClearSuccess()}}
					}}, nil
				},
				fail: r.rejected(name, op, fallback),
			},
		}
	}}
}

func (r *Resource[T, P]) rejected(name, op, fallback string) func(error) Command {
	return func(err error) Command {
		ce := normalize(r.name+"."+op, err, fallback)
		return reducer{name: name + "/rejected", fn: func(st State) (State, []Effect) {
			return r.set(st, func(c Collection[T]) Collection[T] { return c.failed(ce) }), nil
		}}
	}
}

// UpdateStatus patches only the status field. It never touches Loading or
// Success; a failure is written to Err.
func (r *Resource[T, P]) UpdateStatus(id client.ID, status string) Command {
	if r.status == nil {
		return r.unsupported("updateStatus")
	}
	const op = "updateStatus"
	name := r.name + "/" + op
	if err := client.ValidateStatus(status); err != nil {
		return r.rejectLocal(op, client.NewValidationError(r.name+"."+op, err.Error()))
	}
	fallback := failMessage("update", r.singular+" status")
	return reducer{name: name, fn: func(st State) (State, []Effect) {
		return st, []Effect{callEffect{
			name: name,
			do: func(ctx context.Context, e *env) (Command, error) {
				item, err := r.status(ctx, e.api, id, status)
				if err != nil {
					return nil, err
				}
				return reducer{name: name + "/fulfilled", fn: func(st State) (State, []Effect) {
					return r.set(st, func(c Collection[T]) Collection[T] { return c.patched(*item) }), nil
				}}, nil
			},
			fail: func(err error) Command {
				ce := normalize(r.name+"."+op, err, fallback)
				return reducer{name: name + "/rejected", fn: func(st State) (State, []Effect) {
					return r.set(st, func(c Collection[T]) Collection[T] {
						c.Err = ce
						return c
					}), nil
				}}
			},
		}}
	}}
}

// SetCurrent selects the entity a form or detail view works on; nil clears it.
func (r *Resource[T, P]) SetCurrent(item *T) Command {
	return reducer{name: r.name + "/setCurrent", fn: func(st State) (State, []Effect) {
		var cur *T
		if item != nil {
			cp := *item
			cur = &cp
		}
		return r.set(st, func(c Collection[T]) Collection[T] {
			c.Current = cur
			return c
		}), nil
	}}
}

// ClearError resets Err.
func (r *Resource[T, P]) ClearError() Command {
	return reducer{name: r.name + "/clearError", fn: func(st State) (State, []Effect) {
		return r.set(st, func(c Collection[T]) Collection[T] {
			c.Err = nil
			return c
		}), nil
	}}
}

// ClearSuccess resets Success.
func (r *Resource[T, P]) ClearSuccess() Command {
	return reducer{name: r.name + "/clearSuccess", fn: func(st State) (State, []Effect) {
		return r.set(st, func(c Collection[T]) Collection[T] {
			c.Success = false
			return c
		}), nil
	}}
}

// ------------------------------
// Resources
// ------------------------------

// Users is the member directory. The backend offers no member mutations.
var Users = &Resource[client.User, NoPayload]{
	name:     "users",
	singular: "user details",
	slice:    func(st *State) *Collection[client.User] { return &st.Users },
	list:     func(ctx context.Context, a API) ([]client.User, error) { return a.ListUsers(ctx) },
	get: func(ctx context.Context, a API, id client.ID) (*client.User, error) {
		return a.GetUserDetails(ctx, id)
	},
}

// Subscriptions are member subscriptions; they have no status toggle.
var Subscriptions = &Resource[client.Subscription, client.SubscriptionPayload]{
	name:     "subscriptions",
	singular: "subscription",
	slice:    func(st *State) *Collection[client.Subscription] { return &st.Subscriptions },
	list: func(ctx context.Context, a API) ([]client.Subscription, error) {
		return a.ListSubscriptions(ctx)
	},
	listFor: func(ctx context.Context, a API, owner client.ID) ([]client.Subscription, error) {
		return a.ListUserSubscriptions(ctx, owner)
	},
	get: func(ctx context.Context, a API, id client.ID) (*client.Subscription, error) {
		return a.GetSubscription(ctx, id)
	},
	create: func(ctx context.Context, a API, p client.SubscriptionPayload) (*client.Subscription, error) {
		return a.CreateSubscription(ctx, p)
	},
	update: func(ctx context.Context, a API, id client.ID, p client.SubscriptionPayload) (*client.Subscription, error) {
		return a.UpdateSubscription(ctx, id, p)
	},
	remove: func(ctx context.Context, a API, id client.ID) error { return a.DeleteSubscription(ctx, id) },
}

// Plans are the sellable subscription plans.
var Plans = &Resource[client.Plan, client.PlanPayload]{
	name:     "plans",
	singular: "plan",
	slice:    func(st *State) *Collection[client.Plan] { return &st.Plans },
	list:     func(ctx context.Context, a API) ([]client.Plan, error) { return a.ListPlans(ctx) },
	get:      func(ctx context.Context, a API, id client.ID) (*client.Plan, error) { return a.GetPlan(ctx, id) },
	create: func(ctx context.Context, a API, p client.PlanPayload) (*client.Plan, error) {
		return a.CreatePlan(ctx, p)
	},
	update: func(ctx context.Context, a API, id client.ID, p client.PlanPayload) (*client.Plan, error) {
		return a.UpdatePlan(ctx, id, p)
	},
	status: func(ctx context.Context, a API, id client.ID, status string) (*client.Plan, error) {
		return a.UpdatePlanStatus(ctx, id, status)
	},
	remove: func(ctx context.Context, a API, id client.ID) error { return a.DeletePlan(ctx, id) },
}

// Services are the features plans bundle.
var Services = &Resource[client.PlanService, client.ServicePayload]{
	name:     "services",
	singular: "service",
	slice:    func(st *State) *Collection[client.PlanService] { return &st.Services },
	list:     func(ctx context.Context, a API) ([]client.PlanService, error) { return a.ListServices(ctx) },
	get: func(ctx context.Context, a API, id client.ID) (*client.PlanService, error) {
		return a.GetService(ctx, id)
	},
	create: func(ctx context.Context, a API, p client.ServicePayload) (*client.PlanService, error) {
		return a.CreateService(ctx, p)
	},
	update: func(ctx context.Context, a API, id client.ID, p client.ServicePayload) (*client.PlanService, error) {
		return a.UpdateService(ctx, id, p)
	},
	status: func(ctx context.Context, a API, id client.ID, status string) (*client.PlanService, error) {
		return a.UpdateServiceStatus(ctx, id, status)
	},
	remove: func(ctx context.Context, a API, id client.ID) error { return a.DeleteService(ctx, id) },
}

// Conversations feed the dashboard activity counters.
var Conversations = &Resource[client.Conversation, NoPayload]{
	name:     "conversations",
	singular: "conversation",
	slice:    func(st *State) *Collection[client.Conversation] { return &st.Conversations },
	list: func(ctx context.Context, a API) ([]client.Conversation, error) {
		return a.ListConversations(ctx)
	},
}

// Notifications feed the dashboard activity counters.
var Notifications = &Resource[client.Notification, NoPayload]{
	name:     "notifications",
	singular: "notification",
	slice:    func(st *State) *Collection[client.Notification] { return &st.Notifications },
	list: func(ctx context.Context, a API) ([]client.Notification, error) {
		return a.ListNotifications(ctx)
	},
}
