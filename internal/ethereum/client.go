// Package ethereum implements the ledger client over an EVM minter contract.
package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/smartzplatform/minter-service/internal/model"
)

// minterABI is the relevant surface of the ReenterableMinter contract: the
// idempotent mint entry point and the processed-id lookup.
const minterABI = `[
	{"type":"function","name":"mint","stateMutability":"nonpayable",
	 "inputs":[{"name":"mint_id","type":"bytes32"},{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],
	 "outputs":[]},
	{"type":"function","name":"m_processed_mint_id","stateMutability":"view",
	 "inputs":[{"name":"","type":"bytes32"}],
	 "outputs":[{"name":"","type":"bool"}]}
]`

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Client submits mint transactions to the minter contract and answers
// confirmation-depth queries. It holds the single authorized minting key.
type Client struct {
	eth      *ethclient.Client
	abi      abi.ABI
	key      *ecdsa.PrivateKey
	from     common.Address
	contract common.Address
	chainID  *big.Int
	gasCap   uint64
	metrics  Metrics
	logger   *zap.Logger
}

// NewClient dials the node and prepares the signing identity.
// gasCap optionally bounds the per-transaction gas limit; zero means the
// cap is derived from the latest block only.
func NewClient(ctx context.Context, rpcURL, privateKeyHex, contractAddr string, gasCap uint64, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if !common.IsHexAddress(contractAddr) {
		return nil, fmt.Errorf("invalid minter contract address %q", contractAddr)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid minter private key: %w", err)
	}

	eth, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial ethereum node: %w", err)
	}

	chainID, err := eth.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("query chain id: %w", err)
	}

	parsed, err := abi.JSON(strings.NewReader(minterABI))
	if err != nil {
		return nil, fmt.Errorf("parse minter abi: %w", err)
	}

	return &Client{
		eth:      eth,
		abi:      parsed,
		key:      key,
		from:     crypto.PubkeyToAddress(key.PublicKey),
		contract: common.HexToAddress(contractAddr),
		chainID:  chainID,
		gasCap:   gasCap,
		metrics:  metrics,
		logger:   logger.Named("ledger"),
	}, nil
}

// Close releases the underlying RPC connection.
func (c *Client) Close() {
	c.eth.Close()
}

// From returns the minting account address.
func (c *Client) From() common.Address {
	return c.from
}

// Mint submits a mint transaction for the given id, recipient and amount
// and returns the transaction hash as the submission reference. Failures
// are classified: definitive node rejections wrap model.ErrLedgerRejected,
// everything ambiguous is a model.LedgerTransientError.
func (c *Client) Mint(ctx context.Context, id model.MintID, recipient string, amount *big.Int) (ref string, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("mint", err, started)
	}()

	if !common.IsHexAddress(recipient) {
		return "", fmt.Errorf("%w: invalid recipient %q", model.ErrLedgerRejected, recipient)
	}

	data, err := c.abi.Pack("mint", id.Hash(), common.HexToAddress(recipient), amount)
	if err != nil {
		return "", fmt.Errorf("pack mint calldata: %w", err)
	}

	gasPrice, err := c.eth.SuggestGasPrice(ctx)
	if err != nil {
		return "", classify(fmt.Errorf("suggest gas price: %w", err))
	}

	nonce, err := c.eth.PendingNonceAt(ctx, c.from)
	if err != nil {
		return "", classify(fmt.Errorf("pending nonce: %w", err))
	}

	gasLimit, err := c.gasLimit(ctx)
	if err != nil {
		return "", classify(fmt.Errorf("derive gas limit: %w", err))
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &c.contract,
		GasPrice: gasPrice,
		Gas:      gasLimit,
		Data:     data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), c.key)
	if err != nil {
		return "", fmt.Errorf("sign mint tx: %w", err)
	}

	if err = c.eth.SendTransaction(ctx, signed); err != nil {
		return "", classify(fmt.Errorf("send mint tx: %w", err))
	}

	ref = signed.Hash().Hex()
	c.logger.Debug("sent mint tx",
		zap.String("mint_id", string(id)),
		zap.String("recipient", recipient),
		zap.String("amount", amount.String()),
		zap.Uint64("gas", gasLimit),
		zap.String("tx", ref),
	)

	return ref, nil
}

// ConfirmationDepth reports how many blocks deep the submission is mined.
// Zero with a nil error means the transaction is not mined yet (depth
// unknown). A mined transaction with a failed receipt wraps
// model.ErrLedgerRejected.
func (c *Client) ConfirmationDepth(ctx context.Context, ref string) (depth uint64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("confirmation_depth", err, started)
	}()

	receipt, err := c.eth.TransactionReceipt(ctx, common.HexToHash(ref))
	if errors.Is(err, ethereum.NotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, classify(fmt.Errorf("query receipt: %w", err))
	}

	if receipt.Status == types.ReceiptStatusFailed {
		return 0, fmt.Errorf("%w: tx %s reverted", model.ErrLedgerRejected, ref)
	}

	head, err := c.eth.BlockNumber(ctx)
	if err != nil {
		return 0, classify(fmt.Errorf("query head block: %w", err))
	}

	mined := receipt.BlockNumber.Uint64()
	if head < mined {
		// Reorg between the two queries.
		return 0, nil
	}

	return head - mined + 1, nil
}

// Processed reports whether the contract had already minted the id at
// depth blocks behind the current head. A positive answer at depth
// proves finality without a submission reference, which is the recovery
// path for records that lost their reference before a crash. depth zero
// queries the latest state.
func (c *Client) Processed(ctx context.Context, id model.MintID, depth uint64) (processed bool, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("processed", err, started)
	}()

	var atBlock *big.Int
	if depth > 0 {
		head, headErr := c.eth.BlockNumber(ctx)
		if headErr != nil {
			return false, classify(fmt.Errorf("query head block: %w", headErr))
		}
		if head < depth {
			// The chain is shorter than the required depth; nothing can
			// be final yet.
			return false, nil
		}
		atBlock = new(big.Int).SetUint64(head - depth)
	}

	data, err := c.abi.Pack("m_processed_mint_id", id.Hash())
	if err != nil {
		return false, fmt.Errorf("pack processed calldata: %w", err)
	}

	out, err := c.eth.CallContract(ctx, ethereum.CallMsg{To: &c.contract, Data: data}, atBlock)
	if err != nil {
		return false, classify(fmt.Errorf("call processed: %w", err))
	}

	values, err := c.abi.Unpack("m_processed_mint_id", out)
	if err != nil {
		return false, fmt.Errorf("unpack processed result: %w", err)
	}
	processed, ok := values[0].(bool)
	if !ok {
		return false, fmt.Errorf("unexpected processed result %T", values[0])
	}

	return processed, nil
}

// Syncing reports whether the backing node is still catching up with the
// chain. Mint-status answers are unreliable while it is.
func (c *Client) Syncing(ctx context.Context) (syncing bool, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("syncing", err, started)
	}()

	progress, err := c.eth.SyncProgress(ctx)
	if err != nil {
		return false, classify(fmt.Errorf("query sync progress: %w", err))
	}

	return progress != nil, nil
}

// gasLimit caps the transaction gas at 90% of the latest block gas limit.
// Nodes were observed ignoring transactions whose gas limit sits above the
// block limit, so the cap keeps submissions minable.
func (c *Client) gasLimit(ctx context.Context) (uint64, error) {
	header, err := c.eth.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, err
	}

	limit := header.GasLimit / 10 * 9
	if c.gasCap > 0 && c.gasCap < limit {
		limit = c.gasCap
	}
	return limit, nil
}
