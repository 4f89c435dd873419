package shell

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/abgdnv/inventory/internal/inventory/service"
	"github.com/abgdnv/inventory/internal/inventory/validator"
)

const (
	categoryPrompt     = "Category of the products: "
	countPrompt        = "Number of products to see: "
	updateNamePrompt   = "Name of the product to update: "
	deleteNamePrompt   = "Name of the product to delete: "
	addedMessageFormat = "Product with id %s was added.\n"
)

// Handler executes one menu command at a time against the product service.
// Handler methods return an error only for store failures or when the input source fails;
// rejected input is reported to the operator and yields nil.
type Handler struct {
	service  service.ProductService
	prompter validator.Prompter
	out      io.Writer
	logger   *slog.Logger
}

// NewHandler creates a new Handler.
func NewHandler(service service.ProductService, prompter validator.Prompter, out io.Writer, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		prompter: prompter,
		out:      out,
		logger:   logger.With("component", "shell"),
	}
}

// ListAll prints every product.
func (h *Handler) ListAll(ctx context.Context) error {
	products, err := h.service.ListAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Error listing products", "error", err)
		return err
	}
	n, err := writeProducts(h.out, products)
	if err != nil {
		h.logger.ErrorContext(ctx, "Error listing products", "error", err)
		return err
	}
	h.logger.DebugContext(ctx, "Listed all products", "count", n)
	return nil
}

// ListByCategory asks for a category and a result count, then prints at most that many products.
func (h *Handler) ListByCategory(ctx context.Context) error {
	rawCategory, err := h.prompter.Prompt(categoryPrompt)
	if err != nil {
		return err
	}
	rawCount, err := h.prompter.Prompt(countPrompt)
	if err != nil {
		return err
	}
	category := validator.Normalize(rawCategory)
	limit, err := validator.ParseCount(rawCount)
	if err != nil {
		return h.reject(ctx, err)
	}

	products, err := h.service.ListByCategory(ctx, category, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "Error listing products by category", "category", category, "error", err)
		return err
	}
	n, err := writeProducts(h.out, products)
	if err != nil {
		h.logger.ErrorContext(ctx, "Error listing products by category", "category", category, "error", err)
		return err
	}
	h.logger.DebugContext(ctx, "Listed products by category", "category", category, "limit", limit, "count", n)
	return nil
}

// Add reads a new product and stores it.
func (h *Handler) Add(ctx context.Context) error {
	product, err := validator.CollectProductInput(h.prompter)
	if err != nil {
		return h.reject(ctx, err)
	}

	id, err := h.service.Add(ctx, product)
	if err != nil {
		h.logger.ErrorContext(ctx, "Error adding product", "name", product.Name, "error", err)
		return err
	}
	h.logger.DebugContext(ctx, "Added product", "id", id, "name", product.Name)
	_, err = fmt.Fprintf(h.out, addedMessageFormat, id)
	return err
}

// Update asks for the name to look up, then for replacement values, and overwrites every
// product with that name. The lookup name and the new name are independent.
func (h *Handler) Update(ctx context.Context) error {
	rawName, err := h.prompter.Prompt(updateNamePrompt)
	if err != nil {
		return err
	}
	name := validator.Normalize(rawName)

	product, err := validator.CollectProductInput(h.prompter)
	if err != nil {
		return h.reject(ctx, err)
	}

	matched, err := h.service.Update(ctx, name, product)
	if err != nil {
		h.logger.ErrorContext(ctx, "Error updating products", "name", name, "error", err)
		return err
	}
	h.logger.DebugContext(ctx, "Updated products", "name", name, "new_name", product.Name, "matched", matched)
	_, err = fmt.Fprintf(h.out, "Updated %d documents.\n", matched)
	return err
}

// Delete asks for a name and removes every product with that name.
func (h *Handler) Delete(ctx context.Context) error {
	rawName, err := h.prompter.Prompt(deleteNamePrompt)
	if err != nil {
		return err
	}
	name := validator.Normalize(rawName)

	deleted, err := h.service.Delete(ctx, name)
	if err != nil {
		h.logger.ErrorContext(ctx, "Error deleting products", "name", name, "error", err)
		return err
	}
	h.logger.DebugContext(ctx, "Deleted products", "name", name, "deleted", deleted)
	_, err = fmt.Fprintf(h.out, "Deleted %d documents.\n", deleted)
	return err
}

// reject prints the message for a recoverable input error and swallows it.
// Any other error, such as a failing input source, is returned.
func (h *Handler) reject(ctx context.Context, err error) error {
	msg, ok := userMessage(err)
	if !ok {
		return err
	}
	h.logger.DebugContext(ctx, "Input rejected", "reason", err)
	_, werr := fmt.Fprintln(h.out, msg)
	return werr
}
