package negotiator

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"

	nodex "github.com/agrovaani/negotiation-agent/agent/nodes/negotiator"
)

func (n *Negotiator) compileHandleTurnGraph(
	ctx context.Context,
) (compose.Runnable[nodex.GraphInput, nodex.GraphOutput], error) {
	graph := compose.NewGraph[nodex.GraphInput, nodex.GraphOutput]()

	if err := graph.AddLambdaNode("validate_request",
		compose.InvokableLambda(func(ctx context.Context, in nodex.GraphInput) (*nodex.GraphState, error) {
			return nodex.ValidateRequest(in, n.now)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node validate_request: %w", err)
	}

	if err := graph.AddLambdaNode("load_or_create_state",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.LoadOrCreateState(ctx, in, n.store)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node load_or_create_state: %w", err)
	}

	if err := graph.AddLambdaNode("resolve_catalog",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.ResolveCatalog(in, n.catalog)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node resolve_catalog: %w", err)
	}

	if err := graph.AddLambdaNode("extract_offer",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.ExtractOffer(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node extract_offer: %w", err)
	}

	if err := graph.AddLambdaNode("decide",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.Decide(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node decide: %w", err)
	}

	if err := graph.AddLambdaNode("record_memory",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.RecordMemory(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node record_memory: %w", err)
	}

	if err := graph.AddLambdaNode("append_customer_turn",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.AppendCustomerTurn(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node append_customer_turn: %w", err)
	}

	if err := graph.AddLambdaNode("generate_reply",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.GenerateReply(ctx, in, n.generator)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node generate_reply: %w", err)
	}

	if err := graph.AddLambdaNode("append_assistant_turn",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.AppendAssistantTurn(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node append_assistant_turn: %w", err)
	}

	if err := graph.AddLambdaNode("validate_and_save_state",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (*nodex.GraphState, error) {
			return nodex.ValidateAndSaveState(ctx, in, n.store)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node validate_and_save_state: %w", err)
	}

	if err := graph.AddLambdaNode("finalize_reply",
		compose.InvokableLambda(func(ctx context.Context, in *nodex.GraphState) (nodex.GraphOutput, error) {
			return nodex.FinalizeReply(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node finalize_reply: %w", err)
	}

	edges := [][2]string{
		{compose.START, "validate_request"},
		{"validate_request", "load_or_create_state"},
		{"load_or_create_state", "resolve_catalog"},
		{"resolve_catalog", "extract_offer"},
		{"extract_offer", "decide"},
		{"decide", "record_memory"},
		{"record_memory", "append_customer_turn"},
		{"append_customer_turn", "generate_reply"},
		{"generate_reply", "append_assistant_turn"},
		{"append_assistant_turn", "validate_and_save_state"},
		{"validate_and_save_state", "finalize_reply"},
		{"finalize_reply", compose.END},
	}

	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("negotiator.handle_turn"))
	if err != nil {
		return nil, fmt.Errorf("compile negotiator graph: %w", err)
	}
	return runner, nil
}
