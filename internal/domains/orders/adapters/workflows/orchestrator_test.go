package workflows

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/mocks"

	"github.com/Apurer/shop-admin/internal/domains/orders/adapters/memory"
	"github.com/Apurer/shop-admin/internal/domains/orders/application"
	"github.com/Apurer/shop-admin/internal/domains/orders/domain"
	"github.com/Apurer/shop-admin/internal/domains/orders/ports"
)

func TestInlineOrderWorkflows_ChangeStatus(t *testing.T) {
	svc := application.NewService(memory.NewRepository(&domain.Order{ID: 1, Status: domain.StatusPaid}))
	o := NewInlineOrderWorkflows(svc)

	order, err := o.ChangeStatus(context.Background(), ports.ChangeStatusCommand{OrderID: 1, Status: domain.StatusShipping})
	require.NoError(t, err)
	require.Equal(t, domain.StatusShipping, order.Status)

	var empty *InlineOrderWorkflows
	_, err = empty.ChangeStatus(context.Background(), ports.ChangeStatusCommand{})
	require.Error(t, err)
}

func TestTemporalOrderWorkflows_NotConfigured(t *testing.T) {
	_, err := NewTemporalOrderWorkflows(nil).ChangeStatus(context.Background(), ports.ChangeStatusCommand{OrderID: 1})
	require.Error(t, err)
}

func TestBuildStatusChangeWorkflowID(t *testing.T) {
	id := buildStatusChangeWorkflowID(ports.ChangeStatusCommand{OrderID: 9, Status: domain.StatusPaid}, workflowTraceComponent(context.Background()))
	require.True(t, strings.HasPrefix(id, "order-status-9-PAID-fallback-"))
}

func TestTemporalOrderWorkflows_JoinsRunningWorkflow(t *testing.T) {
	c := &mocks.Client{}
	run := &mocks.WorkflowRun{}
	c.On("ExecuteWorkflow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &serviceerror.WorkflowExecutionAlreadyStarted{Message: "started", RunId: "run-1"})
	c.On("GetWorkflow", mock.Anything, mock.MatchedBy(func(id string) bool {
		return strings.HasPrefix(id, "order-status-5-SHIPPING-")
	}), "run-1").Return(run)
	run.On("Get", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		*args.Get(1).(*domain.Order) = domain.Order{ID: 5, Status: domain.StatusShipping}
	}).Return(nil)

	order, err := NewTemporalOrderWorkflows(c).ChangeStatus(context.Background(), ports.ChangeStatusCommand{OrderID: 5, Status: domain.StatusShipping})
	require.NoError(t, err)
	require.Equal(t, domain.StatusShipping, order.Status)
	c.AssertExpectations(t)
	run.AssertExpectations(t)
}
