package orders

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/testsuite"

	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
	orderports "github.com/Apurer/shop-admin/internal/domains/orders/ports"
	orderactivities "github.com/Apurer/shop-admin/internal/platform/temporal/activities/orders"
)

func TestStatusChangeWorkflow_ReturnsUpdatedOrder(t *testing.T) {
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()

	calls := 0
	env.RegisterActivityWithOptions(func(_ context.Context, cmd orderports.ChangeStatusCommand) (*domain.Order, error) {
		calls++
		return &domain.Order{ID: cmd.OrderID, Code: "PED-1", Status: cmd.Status}, nil
	}, activity.RegisterOptions{Name: orderactivities.ChangeOrderStatusActivityName})

	env.ExecuteWorkflow(StatusChangeWorkflow, StatusChangeWorkflowInput{
		Command: orderports.ChangeStatusCommand{OrderID: 1, Status: domain.StatusShipping, Actor: "admin"},
		TraceID: "trace-1",
	})

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())
	var order domain.Order
	require.NoError(t, env.GetWorkflowResult(&order))
	require.Equal(t, domain.StatusShipping, order.Status)
	require.Equal(t, 1, calls)
}

func TestStatusChangeWorkflow_DoesNotRetryFailedWrite(t *testing.T) {
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()

	calls := 0
	env.RegisterActivityWithOptions(func(context.Context, orderports.ChangeStatusCommand) (*domain.Order, error) {
		calls++
		return nil, errors.New("cms unavailable")
	}, activity.RegisterOptions{Name: orderactivities.ChangeOrderStatusActivityName})

	env.ExecuteWorkflow(StatusChangeWorkflow, StatusChangeWorkflowInput{
		Command: orderports.ChangeStatusCommand{OrderID: 1, Status: domain.StatusCanceled},
	})

	require.True(t, env.IsWorkflowCompleted())
	require.Error(t, env.GetWorkflowError())
	require.Equal(t, 1, calls)
}
